package services

import "errors"

var (
	// ErrNotFound is returned when a session, profile or question cannot be
	// resolved.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the caller does not own the resource.
	ErrForbidden = errors.New("forbidden")
)
