package logging

import (
	"bytes"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefaults(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})
}

func TestSetupRoutesBothLoggers(t *testing.T) {
	restoreDefaults(t)
	var buf bytes.Buffer

	Setup(&buf, slog.LevelInfo)
	slog.Info("task deleted", "task_id", 7)
	log.Print("from std log")
	slog.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "msg=\"task deleted\" task_id=7")
	assert.Contains(t, out, "from std log")
	assert.NotContains(t, out, "hidden")
}

func TestInitCreatesLogFile(t *testing.T) {
	restoreDefaults(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	closer, err := Init()
	require.NoError(t, err)
	slog.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(home, ".quadro", "logs", "quadro.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}
