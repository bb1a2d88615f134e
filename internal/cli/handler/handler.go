// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command against the application container.
	// The returned value is printed by the shared OutputFormatter.
	Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)

// Execute implements Handler
func (f HandlerFunc) Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error) {
	return f(ctx, c, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Args      []string
	Parser    *FlagParser
	Formatter *cli.OutputFormatter
	cmd       *cobra.Command
}

// GetCmd returns the cobra command for access to its streams
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// AddOutputFlags registers the --json and --quiet flags every command accepts
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// Command wraps common command execution logic.
// Returns a cobra RunE compatible function.
func Command(h Handler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		parser := NewFlagParser(cmd, nil)
		jsonOutput, quietMode, err := parser.OutputFormats()
		if err != nil {
			return cli.Exit(cli.ExitUsage, err)
		}
		formatter := &cli.OutputFormatter{
			JSON:   jsonOutput,
			Quiet:  quietMode,
			Out:    cmd.OutOrStdout(),
			ErrOut: cmd.ErrOrStderr(),
		}
		parser.formatter = formatter

		cliInstance, err := cli.GetCLIFromContext(cmd)
		if err != nil {
			if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return cli.Exit(cli.ExitError, err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("Error closing CLI", "error", err)
			}
		}()

		arguments := &Arguments{
			Args:      args,
			Parser:    parser,
			Formatter: formatter,
			cmd:       cmd,
		}

		result, err := h.Execute(ctx, cliInstance, arguments)
		if err != nil {
			slog.Error("command failed", "command", cmd.CommandPath(), "error", err)
			return formatter.Fail(err)
		}
		if result == nil {
			return nil
		}

		return formatter.Success(result)
	}
}
