// Package cmd wires the quadro command tree
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/board"
	"github.com/thenoetrevino/quadro/internal/cli/task"
	"github.com/thenoetrevino/quadro/internal/cli/user"
	"github.com/thenoetrevino/quadro/internal/launcher"
	"github.com/thenoetrevino/quadro/internal/logging"
)

// logCloser is the log file opened for subcommands; the TUI opens its own
var logCloser io.Closer

// NewRootCmd builds the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quadro",
		Short: "Quadro - a terminal kanban board for the task API",
		Long: `Quadro shows the tasks of the task API as a three-column kanban board.

Run without arguments to open the board. The subcommands print the same data
for scripts: every one of them accepts --json and --quiet.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiURL, _ := cmd.Flags().GetString(cli.FlagAPIURL)
			webURL, _ := cmd.Flags().GetString(cli.FlagWebURL)
			return launcher.Launch(launcher.Options{APIURL: apiURL, WebURL: webURL})
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n\n%s", err, cmd.UsageString())
		return cli.Exit(cli.ExitUsage, err)
	})

	rootCmd.PersistentFlags().String(cli.FlagAPIURL, "", "Task API base URL (default from config or QUADRO_API_URL)")
	rootCmd.PersistentFlags().String(cli.FlagWebURL, "", "Web front-end base URL used for edit pages")

	// subcommands log to the file too so stdout stays clean for --json
	for _, sub := range []*cobra.Command{board.BoardCmd(), task.TaskCmd(), user.UserCmd()} {
		sub.PersistentPreRun = openLog
		sub.PersistentPostRun = closeLog
		rootCmd.AddCommand(sub)
	}

	return rootCmd
}

func openLog(_ *cobra.Command, _ []string) {
	closer, err := logging.Init()
	if err != nil {
		slog.Warn("logging to stderr", "error", err)
		return
	}
	logCloser = closer
}

func closeLog(_ *cobra.Command, _ []string) {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
