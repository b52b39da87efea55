package user

import "errors"

// Sentinel errors for user operations.
var (
	// ErrNotFound is returned when the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidName is returned when the name is outside 3-50 characters.
	ErrInvalidName = errors.New("name must be between 3 and 50 characters")

	// ErrInvalidEmail is returned when the email address is malformed.
	ErrInvalidEmail = errors.New("invalid email address")
)
