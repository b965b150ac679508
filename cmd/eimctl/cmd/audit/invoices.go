package audit

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/output"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

var invoiceNumberFilter string

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "List all invoices across providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, session, err := auditorSession(cmd)
		if err != nil {
			return err
		}

		var invoices []sdk.Invoice
		if invoiceNumberFilter != "" {
			invoices, err = cfg.Client.SearchAuditInvoices(cmd.Context(), session.Identity.UserID, invoiceNumberFilter)
		} else {
			invoices, err = cfg.Client.AuditInvoices(cmd.Context(), session.Identity.UserID)
		}
		if err != nil {
			return err
		}

		if len(invoices) == 0 {
			cfg.Printer.Info("No invoices found")
			return nil
		}
		output.Invoices(os.Stdout, invoices)
		return nil
	},
}

func init() {
	invoicesCmd.Flags().StringVar(&invoiceNumberFilter, "invoice-number", "", "Filter by invoice number")
}
