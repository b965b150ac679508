package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

// AuthCmd is the parent command for auth operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Commands for managing login, logout, role switching, and session status.`,
}

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(switchRoleCmd)
}

// promptRole asks the user to pick one of the offered roles interactively.
func promptRole(roles []sdk.Role) (sdk.Role, error) {
	options := make([]string, len(roles))
	for i, role := range roles {
		options[i] = fmt.Sprintf("%s - %s", role.Display(), role.Description())
	}

	selected, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		Show("Select a role to continue as:")
	if err != nil {
		return "", fmt.Errorf("failed to show role prompt: %w", err)
	}

	for i, option := range options {
		if option == selected {
			return roles[i], nil
		}
	}
	return "", fmt.Errorf("no role selected")
}

// resolveRoleArg parses a --role flag value against the offered set.
func resolveRoleArg(value string, offered []sdk.Role) (sdk.Role, error) {
	role, ok := sdk.ParseRole(value)
	if !ok {
		return "", fmt.Errorf("unknown role %q", value)
	}
	for _, candidate := range offered {
		if candidate == role {
			return role, nil
		}
	}
	return "", fmt.Errorf("role %q is not offered for this account", value)
}
