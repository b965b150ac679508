package invoice

import (
	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/config"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

var (
	createCustomerID int
	createKwh        float64
	createIssueDate  string
	createDueDate    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an invoice",
	Long: `Issues a new invoice for a customer. The backend computes the total from
the provider's current kWh price. Requires the Invoice Creator or Super
Creator role.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		session, err := cfg.ActiveSession(cmd.Context())
		if err != nil {
			return err
		}

		invoice, err := cfg.Client.CreateInvoice(cmd.Context(), session.Identity.UserID, sdk.CreateInvoiceInput{
			CustomerID:  createCustomerID,
			KwhConsumed: createKwh,
			IssueDate:   createIssueDate,
			DueDate:     createDueDate,
		})
		if err != nil {
			return err
		}
		cfg.Printer.Success("Invoice %s created (total %.2f)", invoice.InvoiceNumber, invoice.TotalAmount)
		return nil
	},
}

func init() {
	createCmd.Flags().IntVar(&createCustomerID, "customer-id", 0, "Customer to bill")
	createCmd.Flags().Float64Var(&createKwh, "kwh", 0, "kWh consumed")
	createCmd.Flags().StringVar(&createIssueDate, "issue-date", "", "Issue date (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&createDueDate, "due-date", "", "Due date (YYYY-MM-DD)")
	_ = createCmd.MarkFlagRequired("customer-id")
	_ = createCmd.MarkFlagRequired("kwh")
	_ = createCmd.MarkFlagRequired("issue-date")
	_ = createCmd.MarkFlagRequired("due-date")
}
