// Package board implements the board operations on top of the task API:
// loading users and tasks, changing a task's status, and deleting a task.
//
// The service never edits a board in place. Callers reconcile by loading the
// tasks again after a successful mutation, so the server stays the single
// source of truth.
package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/quadro/internal/kanban"
	"github.com/thenoetrevino/quadro/internal/models"
)

// TaskAPI is the subset of the REST client the service needs
type TaskAPI interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}

// Service defines all board operations
type Service interface {
	// Read operations
	LoadUsers(ctx context.Context) ([]models.User, error)
	LoadTasks(ctx context.Context) (*TasksResult, error)

	// Write operations
	ChangeStatus(ctx context.Context, req ChangeStatusRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}

// TasksResult is a freshly partitioned board
type TasksResult struct {
	Board models.Board
	// Dropped counts tasks whose status matched no column
	Dropped int
}

// ChangeStatusRequest encapsulates a status change for one task.
// Board is the board currently shown; the task is looked up there.
type ChangeStatusRequest struct {
	Board     models.Board
	TaskID    int
	NewStatus models.Status
}

// service implements Service interface
type service struct {
	api TaskAPI
}

// NewService creates a new board service
func NewService(api TaskAPI) Service {
	return &service{api: api}
}

// LoadUsers fetches the full user list
func (s *service) LoadUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		slog.Error("failed to load users", "error", err)
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

// LoadTasks fetches every task and splits it into status columns
func (s *service) LoadTasks(ctx context.Context) (*TasksResult, error) {
	tasks, err := s.api.ListTasks(ctx)
	if err != nil {
		slog.Error("failed to load tasks", "error", err)
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	b, dropped := kanban.Partition(tasks)
	if dropped > 0 {
		slog.Warn("tasks with unknown status left off the board", "count", dropped)
	}
	return &TasksResult{Board: b, Dropped: dropped}, nil
}

// ChangeStatus sends the task back to the server with only its status replaced.
// A task missing from req.Board fails with ErrTaskNotFound before any request is made.
func (s *service) ChangeStatus(ctx context.Context, req ChangeStatusRequest) (*models.Task, error) {
	if err := s.validateChangeStatus(req); err != nil {
		return nil, err
	}

	task := req.Board.Find(req.TaskID)
	if task == nil {
		slog.Error("task not found for status change", "task_id", req.TaskID)
		return nil, fmt.Errorf("%w: %d", ErrTaskNotFound, req.TaskID)
	}

	updated, err := s.api.UpdateTask(ctx, task.WithStatus(req.NewStatus))
	if err != nil {
		slog.Error("failed to update task status",
			"task_id", req.TaskID,
			"status", req.NewStatus,
			"error", err,
		)
		return nil, fmt.Errorf("failed to update status of task %d: %w", req.TaskID, err)
	}

	slog.Info("task status updated", "task_id", req.TaskID, "from", task.Status, "to", req.NewStatus)
	return updated, nil
}

// DeleteTask deletes the task on the server without checking the local board
func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}

	if err := s.api.DeleteTask(ctx, taskID); err != nil {
		slog.Error("failed to delete task", "task_id", taskID, "error", err)
		return fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}

	slog.Info("task deleted", "task_id", taskID)
	return nil
}

func (s *service) validateChangeStatus(req ChangeStatusRequest) error {
	if req.TaskID <= 0 {
		return ErrInvalidTaskID
	}
	if !req.NewStatus.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.NewStatus)
	}
	return nil
}
