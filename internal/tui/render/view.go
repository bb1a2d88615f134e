package render

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/tui"
	"github.com/thenoetrevino/quadro/internal/tui/components"
	"github.com/thenoetrevino/quadro/internal/tui/layers"
	"github.com/thenoetrevino/quadro/internal/tui/modelops"
	"github.com/thenoetrevino/quadro/internal/tui/state"
)

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Carregando..."
		return view
	}

	base := ViewKanbanBoard(m)
	view.Content = layers.Overlay(base, Modal(m), m.UiState.Width(), m.UiState.Height())
	return view
}

// Modal renders the dialog for the current mode, or "" in normal mode
func Modal(m *tui.Model) string {
	switch m.UiState.Mode() {
	case state.StatusPickerMode:
		return components.RenderStatusPicker(components.StatusPickerProps{
			Task:    modelops.FindTask(m, m.StatusPickerState.TaskID()),
			Options: m.StatusPickerState.Options(),
			Cursor:  m.StatusPickerState.Cursor(),
		})
	case state.DeleteConfirmMode:
		return components.RenderDeleteConfirm(modelops.FindTask(m, m.DeleteTaskID))
	case state.AckMode:
		return components.RenderAck(m.AckState.Message(), m.AckState.Failed())
	case state.DetailMode:
		return components.DetailBoxStyle.Render(
			m.DetailState.View() + "\n\n" + components.SubtleStyle.Render(components.DetailFooter),
		)
	case state.HelpMode:
		return components.RenderHelp(m.Config.KeyMappings)
	}
	return ""
}
