package domain

import "errors"

// Sentinel errors for the domain layer.
var (
	ErrNotFound  = errors.New("requested record not found")
	ErrInvalidID = errors.New("identifier must be a string or a number")
)
