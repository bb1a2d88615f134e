package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/tui"
	"github.com/thenoetrevino/quadro/internal/tui/state"
)

// HandleHelpMode closes the help screen on any key.
func HandleHelpMode(m *tui.Model, _ tea.KeyMsg) tea.Cmd {
	m.UiState.SetMode(state.NormalMode)
	return nil
}
