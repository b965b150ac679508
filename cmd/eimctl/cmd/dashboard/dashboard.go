// Package dashboard activates the role-specific dashboard view.
package dashboard

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/config"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/output"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

var switchTo string

// DashboardCmd loads and renders the active role's dashboard data.
var DashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Load the dashboard for the active role",
	Long: `Validates the persisted session, fires the data loaders configured for
the active role, and renders each result. Pass --switch-role to change the
active role first and re-activate under the new one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.ActiveSession(cmd.Context())
		if err != nil {
			return err
		}

		if switchTo != "" {
			role, ok := sdk.ParseRole(switchTo)
			if !ok {
				cfg.Printer.Error("Unknown role %q", switchTo)
				return nil
			}
			session, err = cfg.Resolver.SwitchRole(cmd.Context(), role)
			if err != nil {
				return err
			}
		}

		identity := session.Identity
		header := identity.Name + " (" + identity.Role.Display() + ")"
		if identity.ProviderName != "" {
			header += " - " + identity.ProviderName
		}
		cfg.Printer.Info("%s", header)

		results, err := cfg.Router.Activate(cmd.Context(), identity)
		if err != nil {
			return err
		}

		for _, result := range results {
			cfg.Printer.Info("")
			cfg.Printer.Info("== %s ==", result.Loader)
			if !result.Outcome.OK() {
				if result.Outcome.Kind == sdk.OutcomeAuthFailure {
					return result.Outcome.Err()
				}
				cfg.Printer.Error("%s", result.Outcome.Message)
				continue
			}
			if err := render(result); err != nil {
				cfg.Printer.Error("%s", err)
			}
		}
		return nil
	},
}

// render decodes a loader payload by its table and prints it. Loader names
// come from the router's static configuration, so an unknown name is a
// programming error worth surfacing loudly rather than masking.
func render(result sdk.LoaderResult) error {
	switch result.Loader {
	case "users":
		var users []sdk.User
		if err := result.Outcome.Decode(&users); err != nil {
			return err
		}
		output.Users(os.Stdout, users)
	case "provider":
		var provider sdk.Provider
		if err := result.Outcome.Decode(&provider); err != nil {
			return err
		}
		output.ProviderDetails(os.Stdout, provider)
	case "invoices":
		var invoices []sdk.Invoice
		if err := result.Outcome.Decode(&invoices); err != nil {
			return err
		}
		output.Invoices(os.Stdout, invoices)
	default:
		panic("eimctl: unrenderable loader " + result.Loader)
	}
	return nil
}

func init() {
	DashboardCmd.Flags().StringVar(&switchTo, "switch-role", "", "Switch to this role before activating")
}
