package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/config"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

var switchRoleCmd = &cobra.Command{
	Use:   "switch-role [role]",
	Short: "Switch the active role",
	Long: `Exchanges the current token for one scoped to another of your assigned
roles. Without an argument, prompts for the role interactively. Switching
to the already-active role is a no-op.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.ActiveSession(cmd.Context())
		if err != nil {
			return err
		}

		var role sdk.Role
		if len(args) == 1 {
			role, err = resolveRoleArg(args[0], session.Identity.Roles)
			if err != nil {
				return err
			}
		} else {
			if cfg.Settings.NonInteractive {
				return fmt.Errorf("a role argument is required in non-interactive mode")
			}
			role, err = promptRole(session.Identity.Roles)
			if err != nil {
				return err
			}
		}

		previous := session.Identity.Role
		switched, err := cfg.Resolver.SwitchRole(cmd.Context(), role)
		if err != nil {
			return err
		}
		if switched.Identity.Role == previous {
			cfg.Printer.Info("Already acting as %s", previous.Display())
			return nil
		}
		cfg.Printer.Success("Switched from %s to %s", previous.Display(), switched.Identity.Role.Display())
		return nil
	},
}
