package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/navigation"
	"github.com/thenoetrevino/quadro/internal/tui"
	"github.com/thenoetrevino/quadro/internal/tui/components"
	"github.com/thenoetrevino/quadro/internal/tui/modelops"
	"github.com/thenoetrevino/quadro/internal/tui/state"
)

const msgNoTaskSelected = "Nenhuma tarefa selecionada"

// HandleNormalMode handles key events on the board.
func HandleNormalMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return HandleQuit(m)
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return nil
	case km.Reload:
		m.Hint = ""
		return m.LoadAll()
	case km.ChangeStatus:
		return HandleChangeStatus(m, modelops.GetCurrentTask(m))
	case km.DeleteTask:
		return HandleDeleteTask(m, modelops.GetCurrentTask(m))
	case km.EditTask:
		return HandleEditTask(m, modelops.GetCurrentTask(m))
	case km.ViewTask:
		return HandleViewTask(m)
	case km.AddTask:
		return m.OpenRoute(navigation.RouteCreateTask)
	case km.ManageTasks:
		return m.OpenRoute(navigation.RouteManageTasks)
	case km.RegisterUser:
		return m.OpenRoute(navigation.RouteRegisterUser)
	case km.PrevColumn, "left":
		modelops.MoveColumn(m, -1)
	case km.NextColumn, "right":
		modelops.MoveColumn(m, 1)
	case km.PrevTask, "up":
		modelops.MoveTask(m, -1)
	case km.NextTask, "down":
		modelops.MoveTask(m, 1)
	}

	return nil
}

// HandleQuit marks the board closed so late results are ignored, then quits.
func HandleQuit(m *tui.Model) tea.Cmd {
	m.Closed = true
	return tea.Quit
}

// HandleChangeStatus opens the status picker for task.
func HandleChangeStatus(m *tui.Model, task *models.Task) tea.Cmd {
	if task == nil {
		m.NotificationState.Add(state.LevelWarning, msgNoTaskSelected)
		return nil
	}
	m.DetailState.Close()
	m.StatusPickerState.Open(task.ID, task.Status)
	m.UiState.SetMode(state.StatusPickerMode)
	return nil
}

// HandleDeleteTask asks for confirmation before deleting task.
func HandleDeleteTask(m *tui.Model, task *models.Task) tea.Cmd {
	if task == nil {
		m.NotificationState.Add(state.LevelWarning, msgNoTaskSelected)
		return nil
	}
	m.DetailState.Close()
	m.DeleteTaskID = task.ID
	m.UiState.SetMode(state.DeleteConfirmMode)
	return nil
}

// HandleEditTask opens the edit page of task.
func HandleEditTask(m *tui.Model, task *models.Task) tea.Cmd {
	if task == nil {
		m.NotificationState.Add(state.LevelWarning, msgNoTaskSelected)
		return nil
	}
	return m.OpenRoute(navigation.EditTaskRoute(task.ID))
}

// HandleViewTask opens the detail popup for the selected task.
func HandleViewTask(m *tui.Model) tea.Cmd {
	task := modelops.GetCurrentTask(m)
	if task == nil {
		m.NotificationState.Add(state.LevelWarning, msgNoTaskSelected)
		return nil
	}

	width, height := DetailSize(m)
	content := components.RenderTaskDetail(components.TaskDetailProps{
		Task:     task,
		Username: m.AppState.Username(task.UserID),
		Width:    width,
	})
	m.DetailState.Open(task.ID, content, width, height)
	m.UiState.SetMode(state.DetailMode)
	return nil
}

// DetailSize returns the viewport size of the detail popup
func DetailSize(m *tui.Model) (int, int) {
	width := min(max(m.UiState.Width()-12, 20), 80)
	height := max(m.UiState.Height()-12, 5)
	return width, height
}
