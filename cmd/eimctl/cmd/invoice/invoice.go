// Package invoice groups invoice listing and lifecycle commands.
package invoice

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

// InvoiceCmd is the parent command for invoice operations.
var InvoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "List and manage invoices",
}

func init() {
	InvoiceCmd.AddCommand(listCmd)
	InvoiceCmd.AddCommand(createCmd)
	InvoiceCmd.AddCommand(updateCmd)
}

// invoiceScope picks the listing endpoint matching the active role, the
// same scoping the dashboard loaders use.
func invoiceScope(id sdk.Identity) (string, error) {
	switch id.Role {
	case sdk.RoleCustomer:
		return "customer", nil
	case sdk.RoleInvoiceCreator:
		return "creator", nil
	case sdk.RoleSuperCreator:
		return "provider", nil
	case sdk.RoleAuditor:
		return "audit", nil
	default:
		return "", fmt.Errorf("role %s has no invoice listing", id.Role.Display())
	}
}
