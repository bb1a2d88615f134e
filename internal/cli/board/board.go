// Package board implements `quadro board`, a plain-text print of the three columns
package board

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/handler"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/models"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the board",
		Long:  "Print every task grouped by status, in column order.",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(handler.HandlerFunc(runBoard)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runBoard(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	snapshot, err := cli.LoadSnapshot(ctx, c.App.BoardService)
	if err != nil {
		return nil, err
	}
	return NewView(snapshot), nil
}

// Column is one status column of the board
type Column struct {
	Status models.Status  `json:"status"`
	Label  string         `json:"label"`
	Tasks  []*models.Task `json:"tasks"`
}

// View is the board as printed by the command
type View struct {
	Columns []Column `json:"columns"`
	Dropped int      `json:"dropped"`

	snapshot *cli.Snapshot
}

// NewView lays a snapshot out in column order
func NewView(snapshot *cli.Snapshot) *View {
	v := &View{Dropped: snapshot.Dropped, snapshot: snapshot}
	for _, opt := range models.StatusOptions {
		v.Columns = append(v.Columns, Column{
			Status: opt.Value,
			Label:  opt.Label,
			Tasks:  snapshot.Board.Column(opt.Value),
		})
	}
	return v
}

// IDs lists every task id in column order
func (v *View) IDs() []int {
	var ids []int
	for _, col := range v.Columns {
		for _, task := range col.Tasks {
			ids = append(ids, task.ID)
		}
	}
	return ids
}

// Pretty prints each column followed by its tasks
func (v *View) Pretty(w io.Writer) error {
	for i, col := range v.Columns {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, styles.StatusHeader(col.Status, len(col.Tasks)))
		if len(col.Tasks) == 0 {
			fmt.Fprintln(w, "  "+styles.SubtitleStyle.Render("Nenhuma tarefa"))
			continue
		}
		for _, task := range col.Tasks {
			fmt.Fprintln(w, "  "+TaskLine(task, v.snapshot.Username(task.UserID)))
		}
	}

	if v.Dropped > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styles.WarningStyle.Render(fmt.Sprintf("%d tarefa(s) com status desconhecido", v.Dropped)))
	}
	return nil
}

// TaskLine formats one task as "#id descrição · setor · prioridade · usuário · data"
func TaskLine(task *models.Task, username string) string {
	description := task.Description
	if description == "" {
		description = "sem descrição"
	}
	return fmt.Sprintf("%s %s %s",
		styles.LabelStyle.Render(fmt.Sprintf("#%d", task.ID)),
		styles.ValueStyle.Render(description),
		styles.SubtitleStyle.Render(fmt.Sprintf("· %s · %s · %s · %s",
			orDash(task.Sector),
			orDash(task.Priority),
			username,
			task.CreatedAt.DateString(),
		)),
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
