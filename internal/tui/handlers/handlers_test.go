package handlers

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/models"
	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
	"github.com/thenoetrevino/quadro/internal/testutil/tuitest"
	"github.com/thenoetrevino/quadro/internal/tui"
	"github.com/thenoetrevino/quadro/internal/tui/state"
)

// newModel builds a model with no backing app; only handlers that send no
// requests may be exercised with it
func newModel(t *testing.T) *tui.Model {
	t.Helper()
	m := tui.InitialModel(context.Background(), nil, config.Default())
	return &m
}

// TestSpinnerStopsWhenIdle ensures ticks are not rescheduled with nothing in flight.
func TestSpinnerStopsWhenIdle(t *testing.T) {
	m := newModel(t)
	assert.Nil(t, Update(m, m.Spinner.Tick()))

	m.AppState.BeginRequest()
	assert.NotNil(t, Update(m, m.Spinner.Tick()))
}

// TestWindowResize ensures the size is stored.
func TestWindowResize(t *testing.T) {
	m := newModel(t)
	Update(m, tea.WindowSizeMsg{Width: 90, Height: 30})

	assert.Equal(t, 90, m.UiState.Width())
	assert.Equal(t, 30, m.UiState.Height())
}

// TestStatusChangeFailed_TaskNotFoundIsSilent ensures a local miss shows no dialog.
func TestStatusChangeFailed_TaskNotFoundIsSilent(t *testing.T) {
	m := newModel(t)
	m.AppState.BeginRequest()

	Update(m, tui.StatusChangeFailedMsg{TaskID: 9, Err: boardservice.ErrTaskNotFound})

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, 0, m.AppState.Pending())
}

// TestStatusChangeFailed_ShowsError ensures a server failure blocks with the error text.
func TestStatusChangeFailed_ShowsError(t *testing.T) {
	m := newModel(t)
	m.AppState.BeginRequest()

	Update(m, tui.StatusChangeFailedMsg{TaskID: 1, Err: errors.New("boom")})

	assert.Equal(t, state.AckMode, m.UiState.Mode())
	assert.Equal(t, MsgStatusChangeFailed, m.AckState.Message())
}

// TestLoadFailed_SetsHint ensures failures only leave a status bar hint.
func TestLoadFailed_SetsHint(t *testing.T) {
	m := newModel(t)
	m.AppState.BeginRequest()

	Update(m, tui.LoadFailedMsg{Resource: tui.ResourceUsers, Err: errors.New("timeout")})

	assert.Equal(t, "falha ao carregar usuários", m.Hint)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

// TestLoadHint_ClearedOnlyByItsResource ensures a users failure survives a
// tasks load that lands after it, and goes away once users load.
func TestLoadHint_ClearedOnlyByItsResource(t *testing.T) {
	m := newModel(t)
	m.AppState.BeginRequest()
	m.AppState.BeginRequest()
	m.AppState.BeginRequest()

	Update(m, tui.LoadFailedMsg{Resource: tui.ResourceUsers, Err: errors.New("timeout")})
	Update(m, tui.TasksLoadedMsg{Board: models.NewBoard()})
	assert.Equal(t, "falha ao carregar usuários", m.Hint)

	Update(m, tui.UsersLoadedMsg{Users: []models.User{{ID: 1, Username: "ana"}}})
	assert.Empty(t, m.Hint)
	assert.Equal(t, 0, m.AppState.Pending())
}

// TestRouteFailed_Notifies ensures a navigator error is shown inline.
func TestRouteFailed_Notifies(t *testing.T) {
	m := newModel(t)

	Update(m, tui.RouteFailedMsg{Route: "/cadastro-usuarios", Err: errors.New("no browser")})

	n, ok := m.NotificationState.Latest()
	assert.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
}

// TestStatusPicker_Navigation ensures the cursor stays within the options.
func TestStatusPicker_Navigation(t *testing.T) {
	m := newModel(t)
	m.AppState.SetBoard(models.Board{
		models.StatusTodo: {{ID: 1, Status: models.StatusTodo}},
	}, 0)

	Update(m, tuitest.Key("s"))
	assert.Equal(t, state.StatusPickerMode, m.UiState.Mode())

	for range 5 {
		Update(m, tuitest.Key("down"))
	}
	assert.Equal(t, models.StatusDone, m.StatusPickerState.Selected())

	for range 5 {
		Update(m, tuitest.Key("k"))
	}
	assert.True(t, m.StatusPickerState.Unchanged())

	assert.Nil(t, Update(m, tuitest.Key("enter")), "same status sends nothing")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}
