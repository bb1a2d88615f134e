package navigation

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditTaskRoute(t *testing.T) {
	assert.Equal(t, "/editar-tarefa/7", EditTaskRoute(7))
	assert.Equal(t, "/editar-tarefa/120", EditTaskRoute(120))
}

func TestHeaderRoutes(t *testing.T) {
	routes := HeaderRoutes()

	require.Len(t, routes, 3)
	assert.Equal(t, RouteRegisterUser, routes[0].Path)
	assert.Equal(t, RouteCreateTask, routes[1].Path)
	assert.Equal(t, RouteManageTasks, routes[2].Path)
}

func TestJoin(t *testing.T) {
	tests := []struct {
		base, route, want string
	}{
		{"http://localhost:5173", "/cadastrar-tarefas", "http://localhost:5173/cadastrar-tarefas"},
		{"http://localhost:5173/", "/cadastrar-tarefas", "http://localhost:5173/cadastrar-tarefas"},
		{"https://tarefas.example.com/app", "/editar-tarefa/3", "https://tarefas.example.com/app/editar-tarefa/3"},
	}

	for _, tt := range tests {
		got, err := Join(tt.base, tt.route)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := Join("http://localhost", "editar-tarefa/3")
	assert.ErrorIs(t, err, ErrInvalidRoute)
}

// TestBrowserNavigatorOpen ensures the opener receives the joined URL.
func TestBrowserNavigatorOpen(t *testing.T) {
	var opened string
	nav := NewBrowserNavigator("http://web:5173/")
	nav.command = func(ctx context.Context, url string) *exec.Cmd {
		opened = url
		return exec.CommandContext(ctx, "true")
	}

	require.NoError(t, nav.Open(context.Background(), EditTaskRoute(2)))
	assert.Equal(t, "http://web:5173/editar-tarefa/2", opened)
}

// TestBrowserNavigatorOpenerMissing ensures a missing opener is an error, not a panic.
func TestBrowserNavigatorOpenerMissing(t *testing.T) {
	nav := NewBrowserNavigator("http://web:5173")
	nav.command = func(ctx context.Context, url string) *exec.Cmd {
		return exec.CommandContext(ctx, "quadro-no-such-opener-binary", url)
	}

	assert.Error(t, nav.Open(context.Background(), RouteManageTasks))
}

func TestRecordingNavigator(t *testing.T) {
	nav := &RecordingNavigator{}
	assert.Empty(t, nav.Last())

	require.NoError(t, nav.Open(context.Background(), RouteCreateTask))
	require.NoError(t, nav.Open(context.Background(), EditTaskRoute(1)))

	assert.Equal(t, []string{RouteCreateTask, "/editar-tarefa/1"}, nav.Routes())
	assert.Equal(t, "/editar-tarefa/1", nav.Last())

	nav.Err = errors.New("boom")
	assert.Error(t, nav.Open(context.Background(), RouteRegisterUser))
}
