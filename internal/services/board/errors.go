package board

import "errors"

// Board-related errors
var (
	// Validation errors
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrInvalidStatus = errors.New("invalid status: must be a_fazer, fazendo or pronto")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found on the board")
)
