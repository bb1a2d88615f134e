package models

import "errors"

var (
	// ErrUnknownStatus indicates a status that is not one of the three board keys
	ErrUnknownStatus = errors.New("unknown task status")

	// ErrInvalidTimestamp indicates a data_cadastro value in an unrecognized layout
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)
