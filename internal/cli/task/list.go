package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/board"
	"github.com/thenoetrevino/quadro/internal/cli/handler"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List every task on the board, optionally only those with one status.",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(handler.HandlerFunc(runList)),
	}

	cmd.Flags().String("status", "", "Only tasks with this status (a_fazer, fazendo, pronto)")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	status, err := args.Parser.ParseStatusOptional("status")
	if err != nil {
		return nil, err
	}

	snapshot, err := cli.LoadSnapshot(ctx, c.App.BoardService)
	if err != nil {
		return nil, err
	}

	tasks := snapshot.Board.All()
	if status != "" {
		tasks = snapshot.Board.Column(status)
	}

	return &TaskList{Tasks: tasks, snapshot: snapshot}, nil
}

// TaskList is the result of `task list`
type TaskList struct {
	Tasks []*models.Task `json:"tasks"`

	snapshot *cli.Snapshot
}

// IDs lists the task ids in board order
func (l *TaskList) IDs() []int {
	ids := make([]int, len(l.Tasks))
	for i, task := range l.Tasks {
		ids[i] = task.ID
	}
	return ids
}

// Pretty prints one line per task
func (l *TaskList) Pretty(w io.Writer) error {
	if len(l.Tasks) == 0 {
		_, err := fmt.Fprintln(w, "Nenhuma tarefa encontrada")
		return err
	}

	fmt.Fprintf(w, "%d tarefa(s):\n\n", len(l.Tasks))
	for _, task := range l.Tasks {
		fmt.Fprintf(w, "  %s %s\n",
			board.TaskLine(task, l.snapshot.Username(task.UserID)),
			styles.StatusChip(task.Status),
		)
	}
	return nil
}
