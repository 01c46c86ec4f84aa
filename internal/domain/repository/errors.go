package repository

import "errors"

var (
	// ErrNotFound is returned by Update and Delete when the target record
	// does not exist in its collection.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned by Create when a uniqueness constraint is
	// violated (user email).
	ErrDuplicate = errors.New("duplicate record")
)
