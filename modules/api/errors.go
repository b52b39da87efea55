package api

import (
	"errors"

	"github.com/Bothaina-Karakrah/tasks-tracker/modules/task"
	"github.com/Bothaina-Karakrah/tasks-tracker/modules/user"
	"github.com/gofiber/fiber/v2"
)

// errorBody maps a core error to its transport representation.
func errorBody(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, task.ErrNotFound),
		errors.Is(err, task.ErrUserNotFound),
		errors.Is(err, user.ErrNotFound):
		return fiber.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		}
	case errors.Is(err, task.ErrInvalidTitle),
		errors.Is(err, task.ErrDueDateInPast),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidEstimate),
		errors.Is(err, user.ErrInvalidName),
		errors.Is(err, user.ErrInvalidEmail):
		return fiber.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		}
	case errors.Is(err, user.ErrDuplicateEmail):
		return fiber.StatusConflict, ErrorResponse{
			Error:   "conflict",
			Message: err.Error(),
		}
	}
	return fiber.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	}
}

// coreError writes the mapped transport response for a core error.
func (m *APIModule) coreError(c *fiber.Ctx, err error) error {
	code, body := errorBody(err)
	if code >= fiber.StatusInternalServerError {
		m.errorCounter.WithLabelValues(c.Route().Path).Inc()
	}
	return c.Status(code).JSON(body)
}

// validationError writes a 400 response for a malformed or invalid request.
func validationError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "validation_error",
		Message: message,
	})
}
