package task

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/testutil"
	clitest "github.com/thenoetrevino/quadro/internal/testutil/cli"
	"github.com/thenoetrevino/quadro/internal/testutil/fakeapi"
)

func TestList(t *testing.T) {
	server, app := clitest.SetupCLITest(t)
	clitest.SeedScenario(server)

	t.Run("all tasks", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)

		plain := ansi.Strip(output)
		assert.Contains(t, plain, "2 tarefa(s):")
		assert.Contains(t, plain, "[A Fazer]")
		assert.Contains(t, plain, "[Pronto]")
	})

	t.Run("by status", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "pronto", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "2\n", output)
	})

	t.Run("empty column", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "Fazendo"})
		require.NoError(t, err)
		assert.Contains(t, output, "Nenhuma tarefa encontrada")
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "arquivado"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}

func TestStatus_ChangesAndReloads(t *testing.T) {
	server, app := clitest.SetupCLITest(t)
	clitest.SeedScenario(server)

	output, err := clitest.ExecuteCLICommand(t, app, StatusCmd(), []string{"--id", "2", "--status", "fazendo"})
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(output), "Status da tarefa #2 atualizado: Pronto → Fazendo")

	assert.Equal(t, 1, server.Count("PUT", "/api/tasks/2/"))
	assert.Equal(t, 2, server.Count("GET", "/api/tasks/"))
	assert.Equal(t, "fazendo", server.Tasks()[1]["status"])
}

func TestStatus_JSON(t *testing.T) {
	server, app := clitest.SetupCLITest(t)
	clitest.SeedScenario(server)

	output, err := clitest.ExecuteCLICommand(t, app, StatusCmd(), []string{"--id", "1", "--status", "pronto", "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	data := result["data"].(map[string]any)
	assert.Equal(t, "a_fazer", data["from"])
	assert.Equal(t, "pronto", data["to"])
	assert.Equal(t, true, data["changed"])
	assert.Equal(t, "pronto", data["task"].(map[string]any)["status"])
}

func TestStatus_SameStatusIsNoop(t *testing.T) {
	server, app := clitest.SetupCLITest(t)
	clitest.SeedScenario(server)

	output, err := clitest.ExecuteCLICommand(t, app, StatusCmd(), []string{"--id", "1", "--status", "a_fazer"})
	require.NoError(t, err)
	assert.Contains(t, output, "Tarefa #1 já está em A Fazer")
	assert.Zero(t, server.Count("PUT", "/api/tasks/1/"))
}

func TestStatus_TaskNotOnBoard(t *testing.T) {
	server, app := clitest.SetupCLITest(t)
	clitest.SeedScenario(server)

	_, err := clitest.ExecuteCLICommand(t, app, StatusCmd(), []string{"--id", "99", "--status", "pronto"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	for _, req := range server.Requests() {
		assert.NotEqual(t, "PUT", req.Method)
	}
}

func TestStatus_ServerFailure(t *testing.T) {
	server, app := clitest.SetupCLITest(t)
	clitest.SeedScenario(server)
	server.Fail("PUT", "/api/tasks/1/", 400)

	_, err := clitest.ExecuteCLICommand(t, app, StatusCmd(), []string{"--id", "1", "--status", "pronto"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	assert.Equal(t, "a_fazer", server.Tasks()[0]["status"])
}

func TestDelete(t *testing.T) {
	t.Run("force", func(t *testing.T) {
		server, app := clitest.SetupCLITest(t)
		clitest.SeedScenario(server)

		output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "1", "--force"})
		require.NoError(t, err)
		assert.Contains(t, output, "Tarefa #1 excluída com sucesso")
		assert.Len(t, server.Tasks(), 1)
	})

	t.Run("confirmed", func(t *testing.T) {
		server, app := clitest.SetupCLITest(t)
		clitest.SeedScenario(server)

		output, err := clitest.ExecuteCLICommandWithInput(t, app, DeleteCmd(), []string{"--id", "2"}, "s\n")
		require.NoError(t, err)
		assert.Contains(t, output, "Excluir tarefa #2 'Tarefa 2'? (y/N): ")
		assert.Equal(t, 1, server.Count("DELETE", "/api/tasks/del/2/"))
	})

	t.Run("cancelled", func(t *testing.T) {
		server, app := clitest.SetupCLITest(t)
		clitest.SeedScenario(server)

		output, err := clitest.ExecuteCLICommandWithInput(t, app, DeleteCmd(), []string{"--id", "2"}, "n\n")
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelado")
		assert.Zero(t, server.Count("DELETE", "/api/tasks/del/2/"))
		assert.Len(t, server.Tasks(), 2)
	})

	t.Run("quiet skips confirmation", func(t *testing.T) {
		server, app := clitest.SetupCLITest(t)
		clitest.SeedScenario(server)

		output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "1", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "1\n", output)
	})

	t.Run("unknown on server", func(t *testing.T) {
		server, app := clitest.SetupCLITest(t)
		server.SetTasks(fakeapi.TaskRecord(1, models.StatusTodo, 1))

		_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "99", "--force"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
		assert.Equal(t, 1, server.Count("DELETE", "/api/tasks/del/99/"))
		assert.Len(t, server.Tasks(), 1)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)

		_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "0", "--force"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}
