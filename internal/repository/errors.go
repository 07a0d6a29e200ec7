package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidReference is returned when an entity references a row that does not exist.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrConflict is returned when a write violates a uniqueness constraint,
	// e.g. a second payment for the same ride.
	ErrConflict = errors.New("entity conflicts with an existing one")

	// ErrInvalidValue is returned when a field holds a value the store rejects.
	ErrInvalidValue = errors.New("invalid value")
)
