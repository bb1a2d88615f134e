// Package cli holds what every quadro subcommand shares: the application
// container, the output formatter, and exit codes.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/config"
)

// Persistent flags registered on the root command
const (
	FlagAPIURL = "api-url"
	FlagWebURL = "web-url"
)

type contextKey string

// AppKey is the context key under which a prebuilt *app.App may be passed
// to subcommands (used by tests to point commands at a fake API)
const AppKey contextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config
}

// NewCLI loads the configuration, applies the --api-url/--web-url flags,
// and builds the application container
func NewCLI(cmd *cobra.Command) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	apiURL, _ := cmd.Flags().GetString(FlagAPIURL)
	webURL, _ := cmd.Flags().GetString(FlagWebURL)
	if err := cfg.Override(apiURL, webURL); err != nil {
		return nil, err
	}

	application, err := app.New(cfg)
	if err != nil {
		return nil, err
	}
	return &CLI{App: application, Config: cfg}, nil
}

// GetCLIFromContext returns the CLI for cmd, reusing an *app.App stored
// in the command context under AppKey when there is one
func GetCLIFromContext(cmd *cobra.Command) (*CLI, error) {
	if application, ok := appFromContext(cmd.Context()); ok {
		return &CLI{App: application, Config: config.Default()}, nil
	}
	return NewCLI(cmd)
}

func appFromContext(ctx context.Context) (*app.App, bool) {
	if ctx == nil {
		return nil, false
	}
	application, ok := ctx.Value(AppKey).(*app.App)
	return application, ok && application != nil
}

// WithApp stores application in ctx for GetCLIFromContext
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, AppKey, application)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
