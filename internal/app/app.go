package app

import (
	"fmt"

	"github.com/thenoetrevino/quadro/internal/api"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/navigation"
	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
)

// App holds all application services and provides dependency injection.
// Both the TUI and the CLI commands are built on top of it.
type App struct {
	// Client talks to the task API
	client *api.Client

	// Service layer
	BoardService boardservice.Service

	// Navigator opens the sibling web pages
	Navigator navigation.Navigator
}

// New creates a new App wired to the endpoints in cfg
func New(cfg *config.Config, opts ...Option) (*App, error) {
	o := &appConfig{}
	for _, opt := range opts {
		opt(o)
	}

	clientOpts := []api.Option{api.WithTimeout(cfg.RequestTimeout)}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(o.httpClient))
	}
	client, err := api.NewClient(cfg.APIURL, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}

	nav := o.navigator
	if nav == nil {
		nav = navigation.NewBrowserNavigator(cfg.WebURL)
	}

	return &App{
		client:       client,
		BoardService: boardservice.NewService(client),
		Navigator:    nav,
	}, nil
}

// APIURL returns the base URL requests are sent to
func (a *App) APIURL() string {
	return a.client.BaseURL()
}

// Close performs cleanup of application resources
func (a *App) Close() error {
	return nil
}
