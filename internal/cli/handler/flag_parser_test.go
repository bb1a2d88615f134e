package handler

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/models"
	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
)

// createTestCommand creates a cobra.Command with no flags
func createTestCommand() *cobra.Command {
	return &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, args []string) {},
	}
}

// createTestParser creates a FlagParser with a test command and formatter
func createTestParser(cmd *cobra.Command) *FlagParser {
	formatter := &cli.OutputFormatter{JSON: false, Quiet: false}
	return NewFlagParser(cmd, formatter)
}

func TestParseTaskID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flagValue int
		wantErr   bool
	}{
		{name: "valid task ID", flagValue: 42},
		{name: "valid task ID = 1", flagValue: 1},
		{name: "zero task ID", flagValue: 0, wantErr: true},
		{name: "negative task ID", flagValue: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().Int("id", tt.flagValue, "task id")

			result, err := createTestParser(cmd).ParseTaskID("id")
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, boardservice.ErrInvalidTaskID)
				assert.Contains(t, err.Error(), "must be greater than 0")
				assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.flagValue, result)
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		want    models.Status
		wantErr error
	}{
		{value: "fazendo", want: models.StatusDoing},
		{value: "A Fazer", want: models.StatusTodo},
		{value: "pronto ", want: models.StatusDone},
		{value: "PRONTO", want: models.StatusDone},
		{value: "arquivado", wantErr: boardservice.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().String("status", tt.value, "status")

			got, err := createTestParser(cmd).ParseStatus("status")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus_Missing(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	cmd.Flags().String("status", "", "status")

	_, err := createTestParser(cmd).ParseStatus("status")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	status, err := createTestParser(cmd).ParseStatusOptional("status")
	require.NoError(t, err)
	assert.Empty(t, status)
}

func TestOutputFormats(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	AddOutputFlags(cmd)
	require.NoError(t, cmd.Flags().Set("json", "true"))

	jsonOutput, quietMode, err := createTestParser(cmd).OutputFormats()
	require.NoError(t, err)
	assert.True(t, jsonOutput)
	assert.False(t, quietMode)
}
