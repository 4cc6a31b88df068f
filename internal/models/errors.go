package models

import "errors"

var (
	// ErrInvalidState is returned when an operation is attempted against a
	// session that is not in the required state.
	ErrInvalidState = errors.New("invalid session state")

	// ErrValidation is returned when a value object is constructed from
	// out-of-range input.
	ErrValidation = errors.New("validation failed")
)
