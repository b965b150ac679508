package audit

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/output"
)

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Show the provider pricing change history",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, session, err := auditorSession(cmd)
		if err != nil {
			return err
		}

		history, err := cfg.Client.PricingHistory(cmd.Context(), session.Identity.UserID)
		if err != nil {
			return err
		}

		if len(history) == 0 {
			cfg.Printer.Info("No pricing changes recorded")
			return nil
		}
		output.PricingHistory(os.Stdout, history)
		return nil
	},
}
