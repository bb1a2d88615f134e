package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/tui"
	"github.com/thenoetrevino/quadro/internal/tui/modelops"
	"github.com/thenoetrevino/quadro/internal/tui/state"
)

// HandleDetailMode handles key events while the detail popup is open.
// Task actions apply to the task shown; other keys scroll the popup.
func HandleDetailMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	km := m.Config.KeyMappings
	task := modelops.FindTask(m, m.DetailState.TaskID())

	switch msg.String() {
	case "esc", km.Quit, km.ViewTask:
		m.DetailState.Close()
		m.UiState.SetMode(state.NormalMode)
		return nil
	case km.EditTask:
		return HandleEditTask(m, task)
	case km.ChangeStatus:
		return HandleChangeStatus(m, task)
	case km.DeleteTask:
		return HandleDeleteTask(m, task)
	}
	return m.DetailState.Update(msg)
}
