package audit

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/output"
)

var queryCmd = &cobra.Command{
	Use:   "query <question>",
	Short: "Ask a natural-language question about the audit data",
	Long: `Sends a natural-language question to the backend, which translates it to SQL
and runs it against the audit tables. The generated SQL is shown alongside
the results.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, session, err := auditorSession(cmd)
		if err != nil {
			return err
		}

		question := strings.Join(args, " ")
		result, err := cfg.Client.Query(cmd.Context(), session.Identity.UserID, question)
		if err != nil {
			return err
		}

		cfg.Printer.Info("SQL: %s", result.GeneratedSQL)
		if result.RowCount == 0 {
			cfg.Printer.Info("No rows returned")
			return nil
		}
		output.QueryResult(os.Stdout, *result)
		return nil
	},
}
