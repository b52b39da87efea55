package api

import "time"

// CreateTaskRequest is the HTTP request for creating a task.
type CreateTaskRequest struct {
	UserID        uint       `json:"user_id" validate:"required"`
	Title         string     `json:"title" validate:"required,min=1,max=100"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category      string     `json:"category" validate:"omitempty,max=50"`
	EstimatedDays int        `json:"estimated_days" validate:"omitempty,gte=0"`
	DueDate       *time.Time `json:"due_date"`
}

// UpdateTaskRequest is the HTTP request for partially updating a task.
// Absent fields are left unchanged.
type UpdateTaskRequest struct {
	Title         *string    `json:"title" validate:"omitempty,min=1,max=100"`
	Description   *string    `json:"description"`
	Priority      *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status        *string    `json:"status" validate:"omitempty,oneof=todo in_progress completed"`
	Category      *string    `json:"category" validate:"omitempty,max=50"`
	EstimatedDays *int       `json:"estimated_days" validate:"omitempty,gte=0"`
	ActualDays    *int       `json:"actual_days" validate:"omitempty,gte=0"`
	DueDate       *time.Time `json:"due_date"`
}

// ReplaceTaskRequest is the HTTP request for fully replacing a task.
// Absent fields reset to schema defaults.
type ReplaceTaskRequest struct {
	Title         string     `json:"title" validate:"required,min=1,max=100"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status        string     `json:"status" validate:"omitempty,oneof=todo in_progress completed"`
	Category      string     `json:"category" validate:"omitempty,max=50"`
	EstimatedDays int        `json:"estimated_days" validate:"omitempty,gte=0"`
	ActualDays    int        `json:"actual_days" validate:"omitempty,gte=0"`
	DueDate       *time.Time `json:"due_date"`
}

// CreateUserRequest is the HTTP request for creating a user.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=50"`
	Email string `json:"email" validate:"required,email,max=100"`
}

// UpdateUserRequest is the HTTP request for partially updating a user.
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=3,max=50"`
	Email *string `json:"email" validate:"omitempty,email,max=100"`
}

// HealthResponse is the HTTP response for health checks.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
