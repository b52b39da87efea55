package task

import "errors"

// Sentinel errors for task operations.
var (
	// ErrNotFound is returned when the requested task does not exist.
	ErrNotFound = errors.New("task not found")

	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidTitle is returned when the title is outside 1-100 characters.
	ErrInvalidTitle = errors.New("title must be between 1 and 100 characters")

	// ErrDueDateInPast is returned when the supplied due date is before now.
	ErrDueDateInPast = errors.New("due_date cannot be in the past")

	// ErrInvalidStatus is returned when the status is not a known state.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when the priority is not a known level.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidEstimate is returned when estimated_days is negative.
	ErrInvalidEstimate = errors.New("estimated_days must be non-negative")
)
