package audit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/config"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

// AuditCmd groups the auditor-only inspection commands.
var AuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect invoices, change logs, and pricing history",
}

func init() {
	AuditCmd.AddCommand(invoicesCmd)
	AuditCmd.AddCommand(logsCmd)
	AuditCmd.AddCommand(pricingCmd)
	AuditCmd.AddCommand(queryCmd)
}

// auditorSession restores the session and rejects non-auditor roles before
// any request goes out.
func auditorSession(cmd *cobra.Command) (*config.GlobalConfig, *sdk.Session, error) {
	cfg := config.MustFromContext(cmd.Context())
	session, err := cfg.ActiveSession(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	if session.Identity.Role != sdk.RoleAuditor {
		return nil, nil, fmt.Errorf("audit commands require the %s role (current: %s)",
			sdk.RoleAuditor.Display(), session.Identity.Role.Display())
	}
	return cfg, session, nil
}
