package modelops

import "github.com/thenoetrevino/quadro/internal/tui"

// MoveColumn moves the cursor delta columns, keeping the task index in range
func MoveColumn(m *tui.Model, delta int) {
	m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + delta)
	m.UiState.ClampSelection(len(GetCurrentTasks(m)))
	EnsureSelectionVisible(m)
}

// MoveTask moves the cursor delta tasks inside the selected column
func MoveTask(m *tui.Model, delta int) {
	count := len(GetCurrentTasks(m))
	if count == 0 {
		return
	}
	next := min(max(m.UiState.SelectedTask()+delta, 0), count-1)
	m.UiState.SetSelectedTask(next)
	EnsureSelectionVisible(m)
}
