package admin

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/config"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/output"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := cfg.ActiveSession(cmd.Context()); err != nil {
			return err
		}

		users, err := cfg.Client.ListUsers(cmd.Context())
		if err != nil {
			return err
		}
		output.Users(os.Stdout, users)
		return nil
	},
}

var (
	createUserProviderID int
	createUserName       string
	createUserEmail      string
	createUserPassword   string
	createUserAddress    string
	createUserPhone      string
	createUserRoles      []string
)

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Long: `Creates a user under a provider. Repeat --role to assign several roles;
users with more than one role select which to act under at login.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := cfg.ActiveSession(cmd.Context()); err != nil {
			return err
		}

		roles := make([]sdk.Role, 0, len(createUserRoles))
		for _, value := range createUserRoles {
			role, ok := sdk.ParseRole(value)
			if !ok {
				return fmt.Errorf("unknown role %q (valid: %s)", value, roleNames())
			}
			roles = append(roles, role)
		}

		user, err := cfg.Client.CreateUser(cmd.Context(), sdk.CreateUserInput{
			ProviderID: createUserProviderID,
			Name:       createUserName,
			Email:      createUserEmail,
			Password:   createUserPassword,
			Address:    createUserAddress,
			Phone:      createUserPhone,
			Roles:      roles,
		})
		if err != nil {
			return err
		}
		cfg.Printer.Success("User %s created (ID %d)", user.Name, user.UserID)
		return nil
	},
}

func roleNames() string {
	names := make([]string, len(sdk.Roles))
	for i, role := range sdk.Roles {
		names[i] = string(role)
	}
	return strings.Join(names, ", ")
}

func init() {
	usersCreateCmd.Flags().IntVar(&createUserProviderID, "provider-id", 0, "Provider the user belongs to")
	usersCreateCmd.Flags().StringVar(&createUserName, "name", "", "Full name")
	usersCreateCmd.Flags().StringVar(&createUserEmail, "email", "", "Email address")
	usersCreateCmd.Flags().StringVar(&createUserPassword, "password", "", "Initial password")
	usersCreateCmd.Flags().StringVar(&createUserAddress, "address", "", "Postal address")
	usersCreateCmd.Flags().StringVar(&createUserPhone, "phone", "", "Phone number")
	usersCreateCmd.Flags().StringArrayVar(&createUserRoles, "role", nil, "Role to assign (repeatable)")
	_ = usersCreateCmd.MarkFlagRequired("provider-id")
	_ = usersCreateCmd.MarkFlagRequired("name")
	_ = usersCreateCmd.MarkFlagRequired("email")
	_ = usersCreateCmd.MarkFlagRequired("password")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)
}
