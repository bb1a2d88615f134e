package modelops

import (
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/tui"
)

// GetCurrentTasks returns the tasks of the selected column.
// Returns an empty slice if the column has no tasks.
func GetCurrentTasks(m *tui.Model) []*models.Task {
	return m.AppState.Column(m.UiState.SelectedStatus())
}

// GetCurrentTask returns the selected task, or nil if the column is empty
func GetCurrentTask(m *tui.Model) *models.Task {
	tasks := GetCurrentTasks(m)
	idx := m.UiState.SelectedTask()
	if idx < 0 || idx >= len(tasks) {
		return nil
	}
	return tasks[idx]
}

// FindTask returns the task with the given ID on the current board, or nil
func FindTask(m *tui.Model, taskID int) *models.Task {
	return m.AppState.Board().Find(taskID)
}
