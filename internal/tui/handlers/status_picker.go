package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/tui"
	"github.com/thenoetrevino/quadro/internal/tui/state"
)

// HandleStatusPickerMode handles key events in status picker mode.
func HandleStatusPickerMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	km := m.Config.KeyMappings
	switch msg.String() {
	case "esc":
		closeStatusPicker(m)
		return nil
	case "enter":
		return confirmStatusChange(m)
	case km.NextTask, "down":
		m.StatusPickerState.MoveDown()
	case km.PrevTask, "up":
		m.StatusPickerState.MoveUp()
	}
	return nil
}

// confirmStatusChange sends the selected status.
// Picking the status the task already has closes the picker without a request.
func confirmStatusChange(m *tui.Model) tea.Cmd {
	taskID := m.StatusPickerState.TaskID()
	selected := m.StatusPickerState.Selected()
	unchanged := m.StatusPickerState.Unchanged()

	closeStatusPicker(m)
	if unchanged {
		return nil
	}
	return m.ChangeStatus(taskID, selected)
}

func closeStatusPicker(m *tui.Model) {
	m.StatusPickerState.Reset()
	m.UiState.SetMode(state.NormalMode)
}
