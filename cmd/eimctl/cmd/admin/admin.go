// Package admin groups the administrative commands (users, providers).
package admin

import (
	"github.com/spf13/cobra"
)

// AdminCmd is the parent command for administrative operations. The backend
// authorizes these for the Admin role; other roles receive an access-denied
// notice without losing their session.
var AdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage users and providers (Admin role)",
}

func init() {
	AdminCmd.AddCommand(usersCmd)
	AdminCmd.AddCommand(providersCmd)
}
