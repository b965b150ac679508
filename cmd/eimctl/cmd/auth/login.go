package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/config"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

var (
	loginEmail    string
	loginPassword string
	loginRole     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the backend",
	Long: `Authenticates with email and password and establishes a persistent
session. Accounts holding several roles are asked to select the role to
act under; pass --role to pick one non-interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		email, password := loginEmail, loginPassword
		if email == "" || password == "" {
			if cfg.Settings.NonInteractive {
				return fmt.Errorf("--email and --password are required in non-interactive mode")
			}
			var err error
			if email == "" {
				email, err = pterm.DefaultInteractiveTextInput.Show("Email")
				if err != nil {
					return fmt.Errorf("failed to read email: %w", err)
				}
			}
			if password == "" {
				password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
			}
		}

		result, err := cfg.Resolver.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		session := result.Session
		if result.NeedsRoleSelection {
			role, err := chooseRole(cfg, result.Identity.Roles)
			if err != nil {
				return err
			}
			session, err = cfg.Resolver.SelectRole(cmd.Context(), role)
			if err != nil {
				return err
			}
		}

		identity := session.Identity
		cfg.Printer.Success("Logged in as %s (%s)", identity.Name, identity.Role.Display())
		if identity.ProviderName != "" {
			cfg.Printer.Info("Provider: %s", identity.ProviderName)
		}
		if identity.MultiRole() {
			cfg.Printer.Info(`You hold %d roles; use "eimctl auth switch-role" to change.`, len(identity.Roles))
		}
		return nil
	},
}

func chooseRole(cfg *config.GlobalConfig, offered []sdk.Role) (sdk.Role, error) {
	if loginRole != "" {
		return resolveRoleArg(loginRole, offered)
	}
	if cfg.Settings.NonInteractive {
		return "", fmt.Errorf("account holds multiple roles; pass --role in non-interactive mode")
	}
	return promptRole(offered)
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	loginCmd.Flags().StringVar(&loginRole, "role", "", "Role to act under when the account holds several")
}
