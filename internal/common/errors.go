// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Common application errors.
var (
	// Store errors.
	ErrNotFound          = errors.New("not found")
	ErrDuplicateCategory = errors.New("budget already exists for category")

	// Validation errors.
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrMissingField    = errors.New("missing required field")
	ErrUnknownCategory = errors.New("unknown category")

	// Persistence errors.
	ErrCorruptedData = errors.New("persisted data corrupted")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)
