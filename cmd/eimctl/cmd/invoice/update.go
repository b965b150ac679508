package invoice

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/config"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

var (
	updateKwh         float64
	updateDueDate     string
	updateStatus      string
	updatePaymentDate string
)

var updateCmd = &cobra.Command{
	Use:   "update <invoice-id>",
	Short: "Update an invoice",
	Long: `Applies a partial update to an invoice; only the provided flags change.
Requires the Invoice Creator or Super Creator role.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		session, err := cfg.ActiveSession(cmd.Context())
		if err != nil {
			return err
		}

		invoiceID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid invoice ID %q", args[0])
		}

		input := sdk.UpdateInvoiceInput{
			KwhConsumed: updateKwh,
			DueDate:     updateDueDate,
			PaymentDate: updatePaymentDate,
		}
		if updateStatus != "" {
			status := sdk.PaymentStatus(updateStatus)
			switch status {
			case sdk.PaymentPaid, sdk.PaymentPending, sdk.PaymentOverdue, sdk.PaymentCancelled:
				input.PaymentStatus = status
			default:
				return fmt.Errorf("invalid payment status %q (valid: Paid, Pending, Overdue, Cancelled)", updateStatus)
			}
		}

		invoice, err := cfg.Client.UpdateInvoice(cmd.Context(), invoiceID, session.Identity.UserID, input)
		if err != nil {
			return err
		}
		cfg.Printer.Success("Invoice %s updated", invoice.InvoiceNumber)
		return nil
	},
}

func init() {
	updateCmd.Flags().Float64Var(&updateKwh, "kwh", 0, "New kWh consumed")
	updateCmd.Flags().StringVar(&updateDueDate, "due-date", "", "New due date (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "Payment status (Paid, Pending, Overdue, Cancelled)")
	updateCmd.Flags().StringVar(&updatePaymentDate, "payment-date", "", "Payment date (YYYY-MM-DD)")
}
