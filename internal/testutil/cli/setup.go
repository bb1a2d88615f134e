package cli

import (
	"testing"

	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/navigation"
	"github.com/thenoetrevino/quadro/internal/testutil/fakeapi"
)

// SetupCLITest starts a fake API and returns it with an App pointed at it.
// Browser navigation is recorded instead of performed.
func SetupCLITest(t *testing.T) (*fakeapi.Server, *app.App) {
	t.Helper()

	server := fakeapi.New(t)

	cfg := config.Default()
	cfg.APIURL = server.URL()

	appInstance, err := app.New(cfg, app.WithNavigator(&navigation.RecordingNavigator{}))
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	return server, appInstance
}

// SeedScenario loads the two-task board used across command tests:
// task 1 in a_fazer owned by ana, task 2 in pronto owned by a user the API does not return
func SeedScenario(server *fakeapi.Server) {
	server.SetUsers(models.User{ID: 1, Username: "ana"})
	server.SetTasks(
		fakeapi.TaskRecord(1, models.StatusTodo, 1),
		fakeapi.TaskRecord(2, models.StatusDone, 7),
	)
	server.ResetRequests()
}
