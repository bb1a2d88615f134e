package handlers

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/spinner"
	"github.com/thenoetrevino/quadro/internal/tui"
	"github.com/thenoetrevino/quadro/internal/tui/modelops"
	"github.com/thenoetrevino/quadro/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	if m.Done() {
		// Context cancelled (graceful shutdown): stop once, drop everything after
		if !m.Closed {
			m.Closed = true
			return tea.Quit
		}
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		return HandleWindowResize(m, msg)

	case spinner.TickMsg:
		if m.AppState.Pending() == 0 {
			return nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return cmd

	case tui.UsersLoadedMsg:
		return HandleUsersLoaded(m, msg)
	case tui.TasksLoadedMsg:
		return HandleTasksLoaded(m, msg)
	case tui.LoadFailedMsg:
		return HandleLoadFailed(m, msg)
	case tui.StatusChangedMsg:
		return HandleStatusChanged(m, msg)
	case tui.StatusChangeFailedMsg:
		return HandleStatusChangeFailed(m, msg)
	case tui.TaskDeletedMsg:
		return HandleTaskDeleted(m, msg)
	case tui.TaskDeleteFailedMsg:
		return HandleTaskDeleteFailed(m, msg)
	case tui.RouteOpenedMsg:
		return HandleRouteOpened(m, msg)
	case tui.RouteFailedMsg:
		return HandleRouteFailed(m, msg)
	}

	return nil
}

// HandleKeyMsg dispatches key messages to the appropriate mode handler.
func HandleKeyMsg(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return HandleNormalMode(m, msg)
	case state.StatusPickerMode:
		return HandleStatusPickerMode(m, msg)
	case state.DeleteConfirmMode:
		return HandleDeleteConfirm(m, msg)
	case state.AckMode:
		return HandleAckMode(m, msg)
	case state.DetailMode:
		return HandleDetailMode(m, msg)
	case state.HelpMode:
		return HandleHelpMode(m, msg)
	}
	return nil
}

// HandleWindowResize handles terminal resize events.
func HandleWindowResize(m *tui.Model, msg tea.WindowSizeMsg) tea.Cmd {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)
	modelops.EnsureSelectionVisible(m)
	return nil
}
