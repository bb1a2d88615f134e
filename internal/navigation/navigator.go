package navigation

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"sync"
)

// Navigator moves the user to another page of the application
type Navigator interface {
	Open(ctx context.Context, route string) error
}

// BrowserNavigator opens routes of the web front end in the system browser
type BrowserNavigator struct {
	baseURL string
	// command builds the opener; replaced in tests
	command func(ctx context.Context, url string) *exec.Cmd
}

// NewBrowserNavigator creates a navigator rooted at the web front end URL
func NewBrowserNavigator(baseURL string) *BrowserNavigator {
	return &BrowserNavigator{baseURL: baseURL, command: openerCommand}
}

// Open launches the browser on baseURL+route without waiting for it to exit
func (n *BrowserNavigator) Open(ctx context.Context, route string) error {
	target, err := Join(n.baseURL, route)
	if err != nil {
		return err
	}

	cmd := n.command(ctx, target)
	if err := cmd.Start(); err != nil {
		slog.Error("failed to open browser", "url", target, "error", err)
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	slog.Info("opened page", "url", target)

	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Warn("browser opener exited with error", "url", target, "error", err)
		}
	}()
	return nil
}

func openerCommand(ctx context.Context, url string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.CommandContext(ctx, "open", url)
	case "windows":
		return exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return exec.CommandContext(ctx, "xdg-open", url)
	}
}

// RecordingNavigator remembers every route it is asked to open
type RecordingNavigator struct {
	mu     sync.Mutex
	routes []string
	Err    error
}

// Open records route and returns Err
func (n *RecordingNavigator) Open(_ context.Context, route string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
	return n.Err
}

// Routes returns a copy of the recorded routes
func (n *RecordingNavigator) Routes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.routes...)
}

// Last returns the most recent route, or "" if none
func (n *RecordingNavigator) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}
