package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/quadro/internal/api"
	"github.com/thenoetrevino/quadro/internal/models"
	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
)

// CommandError carries the process exit code for a failed command.
// The error has already been reported to the user when it is returned.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Exit wraps err with the given code
func Exit(code int, err error) *CommandError {
	return &CommandError{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}

	switch {
	case errors.Is(err, boardservice.ErrTaskNotFound), api.IsNotFound(err):
		return ExitNotFound
	case errors.Is(err, boardservice.ErrInvalidStatus),
		errors.Is(err, boardservice.ErrInvalidTaskID),
		errors.Is(err, models.ErrUnknownStatus):
		return ExitValidation
	case errors.Is(err, api.ErrMalformedResponse):
		return ExitDataErr
	}
	return ExitError
}

// ErrorCode returns the machine-readable code used in JSON error output
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitDataErr:
		return "DATA_ERROR"
	}
	return "API_ERROR"
}
