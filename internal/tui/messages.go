package tui

import "github.com/thenoetrevino/quadro/internal/models"

// UsersLoadedMsg carries a fresh user list
type UsersLoadedMsg struct {
	Users []models.User
}

// TasksLoadedMsg carries a freshly partitioned board
type TasksLoadedMsg struct {
	Board   models.Board
	Dropped int
}

// LoadFailedMsg reports a failed users or tasks load
type LoadFailedMsg struct {
	Resource string
	Err      error
}

// StatusChangedMsg reports that the server accepted a status change
type StatusChangedMsg struct {
	Task *models.Task
}

// StatusChangeFailedMsg reports a rejected or unsent status change
type StatusChangeFailedMsg struct {
	TaskID int
	Err    error
}

// TaskDeletedMsg reports that the server deleted a task
type TaskDeletedMsg struct {
	TaskID int
}

// TaskDeleteFailedMsg reports a failed delete
type TaskDeleteFailedMsg struct {
	TaskID int
	Err    error
}

// RouteOpenedMsg reports that a web page was handed to the navigator
type RouteOpenedMsg struct {
	Route string
}

// RouteFailedMsg reports that a web page could not be opened
type RouteFailedMsg struct {
	Route string
	Err   error
}

// Resources named in LoadFailedMsg
const (
	ResourceUsers = "usuários"
	ResourceTasks = "tarefas"
)
