package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/models"
	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
)

// Commands never touch the model: they capture what they need and report
// back through a message, so a late result can be dropped by Update.

// LoadAll starts both loaders concurrently
func (m *Model) LoadAll() tea.Cmd {
	return tea.Batch(m.LoadUsers(), m.LoadTasks())
}

// LoadUsers fetches the user list
func (m *Model) LoadUsers() tea.Cmd {
	ctx, svc := m.Ctx, m.App.BoardService
	return m.track(func() tea.Msg {
		users, err := svc.LoadUsers(ctx)
		if err != nil {
			return LoadFailedMsg{Resource: ResourceUsers, Err: err}
		}
		return UsersLoadedMsg{Users: users}
	})
}

// LoadTasks fetches and partitions the tasks
func (m *Model) LoadTasks() tea.Cmd {
	ctx, svc := m.Ctx, m.App.BoardService
	return m.track(func() tea.Msg {
		result, err := svc.LoadTasks(ctx)
		if err != nil {
			return LoadFailedMsg{Resource: ResourceTasks, Err: err}
		}
		return TasksLoadedMsg{Board: result.Board, Dropped: result.Dropped}
	})
}

// ChangeStatus sends the status change for a task on the current board
func (m *Model) ChangeStatus(taskID int, status models.Status) tea.Cmd {
	ctx, svc := m.Ctx, m.App.BoardService
	req := boardservice.ChangeStatusRequest{
		Board:     m.AppState.Board(),
		TaskID:    taskID,
		NewStatus: status,
	}
	return m.track(func() tea.Msg {
		task, err := svc.ChangeStatus(ctx, req)
		if err != nil {
			return StatusChangeFailedMsg{TaskID: taskID, Err: err}
		}
		return StatusChangedMsg{Task: task}
	})
}

// DeleteTask sends the delete for a task
func (m *Model) DeleteTask(taskID int) tea.Cmd {
	ctx, svc := m.Ctx, m.App.BoardService
	return m.track(func() tea.Msg {
		if err := svc.DeleteTask(ctx, taskID); err != nil {
			return TaskDeleteFailedMsg{TaskID: taskID, Err: err}
		}
		return TaskDeletedMsg{TaskID: taskID}
	})
}

// OpenRoute asks the navigator to open a web page
func (m *Model) OpenRoute(route string) tea.Cmd {
	ctx, nav := m.Ctx, m.App.Navigator
	return func() tea.Msg {
		if err := nav.Open(ctx, route); err != nil {
			return RouteFailedMsg{Route: route, Err: err}
		}
		return RouteOpenedMsg{Route: route}
	}
}

// track counts cmd as an in-flight request and starts the spinner
// when it is the first one
func (m *Model) track(cmd tea.Cmd) tea.Cmd {
	idle := m.AppState.Pending() == 0
	m.AppState.BeginRequest()
	if idle {
		return tea.Batch(cmd, m.Spinner.Tick)
	}
	return cmd
}
