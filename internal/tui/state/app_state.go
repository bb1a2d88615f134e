package state

import (
	"github.com/thenoetrevino/quadro/internal/kanban"
	"github.com/thenoetrevino/quadro/internal/models"
)

// AppState manages the application's domain data.
// This includes the users and the board loaded from the task API.
// Every field is replaced wholesale when a load completes; nothing is merged.
type AppState struct {
	// users is the last user list returned by the API
	users []models.User

	// userIndex maps user IDs to users, rebuilt on every user load
	userIndex kanban.UserIndex

	// board holds the tasks split into status columns
	board models.Board

	// dropped counts tasks whose status matched no column on the last load
	dropped int

	// usersLoaded and tasksLoaded report whether a load has ever succeeded
	usersLoaded bool
	tasksLoaded bool

	// pending counts requests that have not completed yet
	pending int
}

// NewAppState creates a new AppState with an empty board and no users.
func NewAppState() *AppState {
	return &AppState{
		users:     []models.User{},
		userIndex: kanban.UserIndex{},
		board:     models.NewBoard(),
	}
}

// Users returns the loaded users.
func (s *AppState) Users() []models.User {
	return s.users
}

// SetUsers replaces the user list and rebuilds the user index.
func (s *AppState) SetUsers(users []models.User) {
	if users == nil {
		users = []models.User{}
	}
	s.users = users
	s.userIndex = kanban.NewUserIndex(users)
	s.usersLoaded = true
}

// Username resolves a task's user ID to a display name.
func (s *AppState) Username(userID int) string {
	return kanban.ResolveUsername(userID, s.userIndex)
}

// Board returns the current board. It is never nil.
func (s *AppState) Board() models.Board {
	return s.board
}

// SetBoard replaces the board and the dropped-task count.
func (s *AppState) SetBoard(board models.Board, dropped int) {
	if board == nil {
		board = models.NewBoard()
	}
	s.board = board
	s.dropped = dropped
	s.tasksLoaded = true
}

// Column returns the tasks with the given status, in server order.
func (s *AppState) Column(status models.Status) []*models.Task {
	return s.board.Column(status)
}

// TotalTaskCount returns the number of tasks on the board.
func (s *AppState) TotalTaskCount() int {
	return s.board.Count()
}

// Dropped returns how many tasks the last load left off the board.
func (s *AppState) Dropped() int {
	return s.dropped
}

// UsersLoaded reports whether users were loaded at least once.
func (s *AppState) UsersLoaded() bool {
	return s.usersLoaded
}

// TasksLoaded reports whether tasks were loaded at least once.
func (s *AppState) TasksLoaded() bool {
	return s.tasksLoaded
}

// BeginRequest records that a request was sent.
func (s *AppState) BeginRequest() {
	s.pending++
}

// EndRequest records that a request completed.
func (s *AppState) EndRequest() {
	if s.pending > 0 {
		s.pending--
	}
}

// Pending returns the number of requests in flight.
func (s *AppState) Pending() int {
	return s.pending
}
