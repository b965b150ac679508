package invoice

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/config"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/output"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices visible to the active role",
	Long: `Lists invoices scoped to the active role: a customer sees their own
invoices, a creator the ones they issued, a super creator every invoice of
their provider, and an auditor their audit scope.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		session, err := cfg.ActiveSession(cmd.Context())
		if err != nil {
			return err
		}

		identity := session.Identity
		scope, err := invoiceScope(identity)
		if err != nil {
			return err
		}

		var invoices []sdk.Invoice
		switch scope {
		case "customer":
			invoices, err = cfg.Client.MyInvoices(cmd.Context(), identity.UserID)
		case "creator":
			invoices, err = cfg.Client.CreatedInvoices(cmd.Context(), identity.UserID)
		case "provider":
			invoices, err = cfg.Client.ProviderInvoices(cmd.Context(), identity.ProviderID)
		case "audit":
			invoices, err = cfg.Client.AuditInvoices(cmd.Context(), identity.UserID)
		}
		if err != nil {
			return err
		}

		output.Invoices(os.Stdout, invoices)
		return nil
	},
}
