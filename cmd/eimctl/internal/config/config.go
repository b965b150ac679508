// Package config provides Viper-based configuration and context injection
// for eimctl commands.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/output"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

type contextKey string

const configKey contextKey = "eimctl-config"

// Settings are the file/env/flag-resolvable options.
type Settings struct {
	ServerURL      string `mapstructure:"server_url"`
	NonInteractive bool   `mapstructure:"non_interactive"`
	Colors         bool   `mapstructure:"colors"`
	LogLevel       string `mapstructure:"log_level"`
}

// Load reads configuration from an optional config file and the EIMCTL_*
// environment, falling back to defaults. A missing config file is fine.
func Load(cfgFile string) (*Settings, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".eimctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/eimctl")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("EIMCTL")
	v.AutomaticEnv()

	v.SetDefault("server_url", "http://localhost:8081/api")
	v.SetDefault("non_interactive", false)
	v.SetDefault("colors", true)
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &settings, nil
}

// GlobalConfig holds the resolved settings and the shared session core
// components. The root command builds it once in PersistentPreRunE and
// injects it into the cobra command context for all subcommands.
type GlobalConfig struct {
	Settings   Settings
	Store      sdk.SessionStore
	Dispatcher *sdk.Dispatcher
	Resolver   *sdk.Resolver
	Client     *sdk.Client
	Router     *sdk.Router
	Printer    *output.Printer
}

// ActiveSession restores the persisted session and validates it with the
// role's probe endpoint. It fails with the authentication error when the
// probe reports the credential invalid (the store is already cleared), and
// with a login hint when no session is persisted at all. Any other probe
// outcome treats the session as provisionally valid.
func (c *GlobalConfig) ActiveSession(ctx context.Context) (*sdk.Session, error) {
	session, err := c.Resolver.Restore(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.New(`not logged in; run "eimctl auth login"`)
	}
	return session, nil
}

// InjectConfig adds cfg to the cobra command context.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves the config from the command context.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves the config or panics. Only for RunE functions
// that run under the root command's PersistentPreRunE.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("eimctl: config not found in context - this is a bug in eimctl")
	}
	return cfg
}
