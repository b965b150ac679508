package audit

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/output"
)

var logsCmd = &cobra.Command{
	Use:   "logs <invoice-number>",
	Short: "Show the change log for an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, session, err := auditorSession(cmd)
		if err != nil {
			return err
		}

		logs, err := cfg.Client.SearchAuditLogs(cmd.Context(), session.Identity.UserID, args[0])
		if err != nil {
			return err
		}

		if len(logs) == 0 {
			cfg.Printer.Info("No audit logs found for invoice %s", args[0])
			return nil
		}
		output.AuditLogs(os.Stdout, logs)
		return nil
	},
}
