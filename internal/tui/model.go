package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/spinner"
	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/tui/components"
	"github.com/thenoetrevino/quadro/internal/tui/state"
)

// Model represents the application state for the TUI.
// Handlers in the handlers package mutate it; render draws it.
type Model struct {
	// Ctx is cancelled when the program shuts down
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	AppState          *state.AppState
	UiState           *state.UIState
	NotificationState *state.NotificationState
	StatusPickerState *state.StatusPickerState
	AckState          *state.AckState
	DetailState       *state.DetailState

	// Spinner animates the status bar while requests are in flight
	Spinner spinner.Model

	// DeleteTaskID is the task awaiting delete confirmation
	DeleteTaskID int

	// Hint is a short non-blocking message shown in the status bar
	Hint string

	// Closed is set once the user quits; late results are ignored after that
	Closed bool
}

// InitialModel creates the TUI model. Nothing is fetched until Init runs.
func InitialModel(ctx context.Context, application *app.App, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	return Model{
		Ctx:               ctx,
		App:               application,
		Config:            cfg,
		AppState:          state.NewAppState(),
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		StatusPickerState: state.NewStatusPickerState(),
		AckState:          state.NewAckState(),
		DetailState:       state.NewDetailState(),
		Spinner:           spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Init starts loading users and tasks concurrently
func (m *Model) Init() tea.Cmd {
	return m.LoadAll()
}

// Done reports whether results should be ignored because the board is gone
func (m *Model) Done() bool {
	return m.Closed || m.Ctx.Err() != nil
}
