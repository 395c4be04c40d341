package repository

import "errors"

// ErrNotFound indicates that the requested document does not exist
var ErrNotFound = errors.New("document not found")

// ErrInvalidInput indicates a write was rejected before reaching the database
var ErrInvalidInput = errors.New("invalid input")

// IsNotFound checks if an error indicates a missing document
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
