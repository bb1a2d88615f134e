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
	"github.com/thenoetrevino/quadro/internal/models"
	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
)

// StatusCmd returns the task status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Change a task's status",
		Long: `Change the status of a task on the board.

The board is loaded first; a task that is not on it is reported as not found
without sending any update. After the update the board is loaded again and
the task is looked up in its new column.`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runStatus)),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("status", "", "New status: a_fazer, fazendo or pronto (required)")
	if err := cmd.MarkFlagRequired("status"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runStatus(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	taskID, err := args.Parser.ParseTaskID("id")
	if err != nil {
		return nil, err
	}
	newStatus, err := args.Parser.ParseStatus("status")
	if err != nil {
		return nil, err
	}

	tasks, err := c.App.BoardService.LoadTasks(ctx)
	if err != nil {
		return nil, err
	}

	current := tasks.Board.Find(taskID)
	if current == nil {
		return nil, fmt.Errorf("%w: %d", boardservice.ErrTaskNotFound, taskID)
	}

	result := &StatusResult{TaskID: taskID, From: current.Status, To: newStatus}
	if current.Status == newStatus {
		result.Task = current
		return result, nil
	}

	if _, err := c.App.BoardService.ChangeStatus(ctx, boardservice.ChangeStatusRequest{
		Board:     tasks.Board,
		TaskID:    taskID,
		NewStatus: newStatus,
	}); err != nil {
		return nil, err
	}
	result.Changed = true

	// the server is the source of truth, so report the task as it is listed now
	reloaded, err := c.App.BoardService.LoadTasks(ctx)
	if err != nil {
		return nil, err
	}
	result.Task = reloaded.Board.Find(taskID)
	if result.Task != nil {
		result.To = result.Task.Status
	}

	return result, nil
}

// StatusResult is the result of `task status`
type StatusResult struct {
	TaskID  int           `json:"task_id"`
	From    models.Status `json:"from"`
	To      models.Status `json:"to"`
	Changed bool          `json:"changed"`
	Task    *models.Task  `json:"task,omitempty"`
}

// GetID returns the task id for quiet output
func (r *StatusResult) GetID() int {
	return r.TaskID
}

// Pretty reports the transition
func (r *StatusResult) Pretty(w io.Writer) error {
	if !r.Changed {
		_, err := fmt.Fprintf(w, "Tarefa #%d já está em %s\n", r.TaskID, r.From.Label())
		return err
	}
	_, err := fmt.Fprintf(w, "%s Status da tarefa #%d atualizado: %s → %s\n",
		styles.SuccessStyle.Render("✓"), r.TaskID, r.From.Label(), r.To.Label())
	return err
}
