package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/tui"
	"github.com/thenoetrevino/quadro/internal/tui/state"
)

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// HandleDeleteConfirm handles task deletion confirmation.
func HandleDeleteConfirm(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "s", "S":
		taskID := m.DeleteTaskID
		m.DeleteTaskID = 0
		m.UiState.SetMode(state.NormalMode)
		return m.DeleteTask(taskID)
	case "n", "N", "esc":
		m.DeleteTaskID = 0
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

// HandleAckMode waits for the user to dismiss the acknowledgment.
// Every other key is swallowed.
func HandleAckMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	if state.IsDismissKey(msg.String()) {
		m.AckState.Dismiss()
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}
