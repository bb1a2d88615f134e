package modelops

import (
	"log/slog"

	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/tui"
	"github.com/thenoetrevino/quadro/internal/tui/components"
)

// ApplyUsers replaces the user list and its index
func ApplyUsers(m *tui.Model, users []models.User) {
	m.AppState.SetUsers(users)
	slog.Debug("users loaded", "count", len(users))
}

// ApplyTasks replaces the board with a fresh one.
// The cursor follows the selected task by ID when it is still on the board,
// otherwise it stays in the same column, clamped to the new task count.
func ApplyTasks(m *tui.Model, board models.Board, dropped int) {
	var selectedID int
	if task := GetCurrentTask(m); task != nil {
		selectedID = task.ID
	}

	m.AppState.SetBoard(board, dropped)
	if dropped > 0 {
		slog.Warn("tasks with unknown status were not shown", "count", dropped)
	}

	if selectedID != 0 && FollowTask(m, selectedID) {
		return
	}
	m.UiState.ClampSelection(len(GetCurrentTasks(m)))
	EnsureSelectionVisible(m)
}

// FollowTask moves the cursor onto the task with the given ID.
// Returns false when the task is not on the board.
func FollowTask(m *tui.Model, taskID int) bool {
	for col, status := range models.Statuses() {
		for idx, task := range m.AppState.Column(status) {
			if task.ID == taskID {
				m.UiState.SetSelectedColumn(col)
				m.UiState.SetSelectedTask(idx)
				EnsureSelectionVisible(m)
				return true
			}
		}
	}
	return false
}

// EnsureSelectionVisible scrolls the selected column so the cursor is on screen
func EnsureSelectionVisible(m *tui.Model) {
	visible := components.MaxVisibleTasks(m.UiState.ContentHeight())
	m.UiState.EnsureTaskVisible(m.UiState.SelectedStatus(), m.UiState.SelectedTask(), visible)
}
