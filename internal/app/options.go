package app

import (
	"net/http"

	"github.com/thenoetrevino/quadro/internal/navigation"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	httpClient *http.Client
	navigator  navigation.Navigator
}

// WithHTTPClient sets the HTTP client used for API requests
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = c
	}
}

// WithNavigator replaces the browser navigator
func WithNavigator(n navigation.Navigator) Option {
	return func(cfg *appConfig) {
		cfg.navigator = n
	}
}
