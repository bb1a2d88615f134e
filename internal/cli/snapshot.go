package cli

import (
	"context"

	"github.com/thenoetrevino/quadro/internal/kanban"
	"github.com/thenoetrevino/quadro/internal/models"
	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
	"golang.org/x/sync/errgroup"
)

// Snapshot is one consistent read of users and tasks
type Snapshot struct {
	Users   []models.User
	Index   kanban.UserIndex
	Board   models.Board
	Dropped int
}

// LoadSnapshot fetches users and tasks concurrently, the same pair of
// requests the board issues on startup
func LoadSnapshot(ctx context.Context, svc boardservice.Service) (*Snapshot, error) {
	var (
		users []models.User
		tasks *boardservice.TasksResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = svc.LoadUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = svc.LoadTasks(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Snapshot{
		Users:   users,
		Index:   kanban.NewUserIndex(users),
		Board:   tasks.Board,
		Dropped: tasks.Dropped,
	}, nil
}

// Username resolves a task owner through the snapshot's user index
func (s *Snapshot) Username(userID int) string {
	return kanban.ResolveUsername(userID, s.Index)
}
