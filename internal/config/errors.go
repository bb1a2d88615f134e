package config

import "errors"

var (
	ErrInvalidAPIURL   = errors.New("invalid api url")
	ErrInvalidWebURL   = errors.New("invalid web url")
	ErrNegativeTimeout = errors.New("request timeout must not be negative")
)
