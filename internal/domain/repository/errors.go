package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the given identifier.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when the users email uniqueness constraint trips.
	ErrDuplicateEmail = errors.New("email already registered")
)
