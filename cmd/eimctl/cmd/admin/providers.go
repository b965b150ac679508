package admin

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/config"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/output"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Manage providers",
}

var providersShowCmd = &cobra.Command{
	Use:   "show [provider-id]",
	Short: "Show a provider",
	Long: `Shows a provider by ID. Without an argument, shows the provider the
logged-in admin belongs to.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		session, err := cfg.ActiveSession(cmd.Context())
		if err != nil {
			return err
		}

		providerID := session.Identity.ProviderID
		if len(args) == 1 {
			providerID, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid provider ID %q", args[0])
			}
		}
		if providerID == 0 {
			cfg.Printer.Info("No provider assigned to this account.")
			return nil
		}

		provider, err := cfg.Client.GetProvider(cmd.Context(), providerID)
		if err != nil {
			return err
		}
		output.ProviderDetails(os.Stdout, *provider)
		return nil
	},
}

var (
	createProviderName  string
	createProviderCity  string
	createProviderEmail string
	createProviderPhone string
	createProviderPrice float64
)

var providersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := cfg.ActiveSession(cmd.Context()); err != nil {
			return err
		}

		provider, err := cfg.Client.CreateProvider(cmd.Context(), sdk.CreateProviderInput{
			Name:            createProviderName,
			City:            createProviderCity,
			Email:           createProviderEmail,
			Phone:           createProviderPhone,
			CurrentKwhPrice: createProviderPrice,
		})
		if err != nil {
			return err
		}
		cfg.Printer.Success("Provider %s created (ID %d)", provider.Name, provider.ProviderID)
		return nil
	},
}

var providersSetPriceCmd = &cobra.Command{
	Use:   "set-price <provider-id> <price>",
	Short: "Update a provider's kWh price",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := cfg.ActiveSession(cmd.Context()); err != nil {
			return err
		}

		providerID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid provider ID %q", args[0])
		}
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", args[1])
		}

		if err := cfg.Client.UpdateProviderPrice(cmd.Context(), providerID, price); err != nil {
			return err
		}
		cfg.Printer.Success("Price updated to %s/kWh", args[1])
		return nil
	},
}

func init() {
	providersCreateCmd.Flags().StringVar(&createProviderName, "name", "", "Provider name")
	providersCreateCmd.Flags().StringVar(&createProviderCity, "city", "", "City")
	providersCreateCmd.Flags().StringVar(&createProviderEmail, "email", "", "Contact email")
	providersCreateCmd.Flags().StringVar(&createProviderPhone, "phone", "", "Phone number")
	providersCreateCmd.Flags().Float64Var(&createProviderPrice, "price", 0, "Initial kWh price")
	_ = providersCreateCmd.MarkFlagRequired("name")
	_ = providersCreateCmd.MarkFlagRequired("city")
	_ = providersCreateCmd.MarkFlagRequired("email")
	_ = providersCreateCmd.MarkFlagRequired("price")

	providersCmd.AddCommand(providersShowCmd)
	providersCmd.AddCommand(providersCreateCmd)
	providersCmd.AddCommand(providersSetPriceCmd)
}
