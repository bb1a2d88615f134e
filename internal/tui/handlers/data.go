package handlers

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
	"github.com/thenoetrevino/quadro/internal/tui"
	"github.com/thenoetrevino/quadro/internal/tui/modelops"
	"github.com/thenoetrevino/quadro/internal/tui/state"
)

// Acknowledgment texts
const (
	MsgStatusChanged      = "Status da tarefa atualizado com sucesso!"
	MsgStatusChangeFailed = "Erro ao atualizar o status. Verifique os dados e tente novamente."
	MsgTaskDeleted        = "Tarefa excluída com sucesso!"
	MsgTaskDeleteFailed   = "Erro ao excluir a tarefa. Tente novamente."
)

// HandleUsersLoaded replaces the user list.
func HandleUsersLoaded(m *tui.Model, msg tui.UsersLoadedMsg) tea.Cmd {
	m.AppState.EndRequest()
	clearLoadHint(m, tui.ResourceUsers)
	modelops.ApplyUsers(m, msg.Users)
	return nil
}

// HandleTasksLoaded replaces the board.
func HandleTasksLoaded(m *tui.Model, msg tui.TasksLoadedMsg) tea.Cmd {
	m.AppState.EndRequest()
	clearLoadHint(m, tui.ResourceTasks)
	modelops.ApplyTasks(m, msg.Board, msg.Dropped)
	return nil
}

// HandleLoadFailed keeps the previous data and leaves a hint in the status bar.
// Load failures never block the user.
func HandleLoadFailed(m *tui.Model, msg tui.LoadFailedMsg) tea.Cmd {
	m.AppState.EndRequest()
	slog.Error("load failed", "resource", msg.Resource, "error", msg.Err)
	m.Hint = loadHint(msg.Resource)
	return nil
}

func loadHint(resource string) string {
	return "falha ao carregar " + resource
}

// clearLoadHint drops the hint only when it belongs to resource, so a
// failure of the other loader stays visible
func clearLoadHint(m *tui.Model, resource string) {
	if m.Hint == loadHint(resource) {
		m.Hint = ""
	}
}

// HandleStatusChanged acknowledges the change and reloads the tasks.
// The acknowledgment is shown while the reload runs.
func HandleStatusChanged(m *tui.Model, msg tui.StatusChangedMsg) tea.Cmd {
	m.AppState.EndRequest()
	if msg.Task != nil {
		slog.Info("task status changed", "task_id", msg.Task.ID, "status", msg.Task.Status)
	}
	showAck(m, MsgStatusChanged, false)
	return m.LoadTasks()
}

// HandleStatusChangeFailed reports a failed status change.
// A task missing from the board never reached the server and is only logged.
func HandleStatusChangeFailed(m *tui.Model, msg tui.StatusChangeFailedMsg) tea.Cmd {
	m.AppState.EndRequest()
	if errors.Is(msg.Err, boardservice.ErrTaskNotFound) {
		slog.Warn("status change skipped", "task_id", msg.TaskID, "error", msg.Err)
		return nil
	}
	slog.Error("status change failed", "task_id", msg.TaskID, "error", msg.Err)
	showAck(m, MsgStatusChangeFailed, true)
	return nil
}

// HandleTaskDeleted acknowledges the delete and reloads the tasks.
func HandleTaskDeleted(m *tui.Model, msg tui.TaskDeletedMsg) tea.Cmd {
	m.AppState.EndRequest()
	slog.Info("task deleted", "task_id", msg.TaskID)
	showAck(m, MsgTaskDeleted, false)
	return m.LoadTasks()
}

// HandleTaskDeleteFailed reports a failed delete; the board is left as is.
func HandleTaskDeleteFailed(m *tui.Model, msg tui.TaskDeleteFailedMsg) tea.Cmd {
	m.AppState.EndRequest()
	slog.Error("delete failed", "task_id", msg.TaskID, "error", msg.Err)
	showAck(m, MsgTaskDeleteFailed, true)
	return nil
}

// HandleRouteOpened confirms that a web page was opened.
func HandleRouteOpened(m *tui.Model, msg tui.RouteOpenedMsg) tea.Cmd {
	slog.Info("opened web page", "route", msg.Route)
	m.NotificationState.Add(state.LevelInfo, "Abrindo "+msg.Route)
	return nil
}

// HandleRouteFailed reports that a web page could not be opened.
func HandleRouteFailed(m *tui.Model, msg tui.RouteFailedMsg) tea.Cmd {
	slog.Error("failed to open web page", "route", msg.Route, "error", msg.Err)
	m.NotificationState.Add(state.LevelError, "Não foi possível abrir "+msg.Route)
	return nil
}

func showAck(m *tui.Model, message string, failed bool) {
	m.DetailState.Close()
	m.AckState.Show(message, failed)
	m.UiState.SetMode(state.AckMode)
}
