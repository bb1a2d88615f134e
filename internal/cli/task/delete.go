package task

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/handler"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(handler.HandlerFunc(runDelete)),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	taskID, err := args.Parser.ParseTaskID("id")
	if err != nil {
		return nil, err
	}
	force, err := args.Parser.ParseBool("force")
	if err != nil {
		return nil, err
	}

	if !force && !args.Formatter.Quiet && !args.Formatter.JSON {
		cmd := args.GetCmd()
		if !cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), deletePrompt(ctx, c, taskID)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelado")
			return nil, nil
		}
	}

	// the server decides whether the id exists
	if err := c.App.BoardService.DeleteTask(ctx, taskID); err != nil {
		return nil, err
	}

	return &DeleteResult{TaskID: taskID}, nil
}

// deletePrompt names the task when the board lists it. A failed lookup only
// makes the prompt less descriptive.
func deletePrompt(ctx context.Context, c *cli.CLI, taskID int) string {
	tasks, err := c.App.BoardService.LoadTasks(ctx)
	if err != nil {
		return fmt.Sprintf("Excluir tarefa #%d?", taskID)
	}
	if task := tasks.Board.Find(taskID); task != nil && task.Description != "" {
		return fmt.Sprintf("Excluir tarefa #%d '%s'?", taskID, task.Description)
	}
	return fmt.Sprintf("Excluir tarefa #%d?", taskID)
}

// DeleteResult is the result of `task delete`
type DeleteResult struct {
	TaskID int `json:"task_id"`
}

// GetID returns the task id for quiet output
func (r *DeleteResult) GetID() int {
	return r.TaskID
}

// Pretty confirms the deletion
func (r *DeleteResult) Pretty(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s Tarefa #%d excluída com sucesso\n", styles.SuccessStyle.Render("✓"), r.TaskID)
	return err
}
