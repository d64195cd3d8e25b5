package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when an insert or update violates a uniqueness constraint.
	ErrConflict = errors.New("record already exists")
)
