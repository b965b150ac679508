package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/cmd/admin"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/cmd/audit"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/cmd/auth"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/cmd/dashboard"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/cmd/invoice"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/config"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/output"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/session"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

var (
	cfgFile        string
	serverURL      string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "eimctl",
	Short: "Electricity Invoice Management client",
	Long: `eimctl is the command-line client for the Electricity Invoice Management
backend. It maintains a bearer-token session across invocations, resolves
which of possibly several roles you act under, and gives role-aware access
to users, providers, invoices, and audit data.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("server") {
			settings.ServerURL = serverURL
		}
		if nonInteractive || os.Getenv("EIMCTL_NON_INTERACTIVE") == "1" {
			settings.NonInteractive = true
		}

		store, err := session.NewFileStore()
		if err != nil {
			return fmt.Errorf("failed to create session store: %w", err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel(settings.LogLevel),
		}))

		dispatcher := sdk.NewDispatcher(settings.ServerURL, store, sdk.WithLogger(logger))

		cfg := &config.GlobalConfig{
			Settings:   *settings,
			Store:      store,
			Dispatcher: dispatcher,
			Resolver:   sdk.NewResolver(dispatcher),
			Client:     sdk.NewClient(dispatcher),
			Router:     sdk.NewRouter(dispatcher),
			Printer:    output.NewPrinter(output.ResolveColors(settings.Colors)),
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default searches for .eimctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8081/api", "Backend API base URL")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via EIMCTL_NON_INTERACTIVE=1)")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(dashboard.DashboardCmd)
	rootCmd.AddCommand(admin.AdminCmd)
	rootCmd.AddCommand(invoice.InvoiceCmd)
	rootCmd.AddCommand(audit.AuditCmd)
}
