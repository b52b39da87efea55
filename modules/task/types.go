package task

import (
	"context"
	"time"
)

// CreateTaskRequest is the request for creating a task. Priority, category
// and estimated_days fall back to schema defaults when omitted. Tasks are
// always created in the todo state.
type CreateTaskRequest struct {
	UserID        uint       `json:"user_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority,omitempty"`
	Category      string     `json:"category,omitempty"`
	EstimatedDays int        `json:"estimated_days,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	ID uint `json:"id"`
}

// ListTasksRequest is the request for listing tasks. Empty fields match
// all tasks; non-empty fields are equality filters.
type ListTasksRequest struct {
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
	Category string `json:"category,omitempty"`
}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// UpdateTaskRequest is the request for partially updating a task.
// Nil fields are left unchanged.
type UpdateTaskRequest struct {
	ID            uint       `json:"id"`
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Priority      *string    `json:"priority,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Category      *string    `json:"category,omitempty"`
	EstimatedDays *int       `json:"estimated_days,omitempty"`
	ActualDays    *int       `json:"actual_days,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
}

// ReplaceTaskRequest is the request for fully replacing a task's mutable
// fields. Omitted fields reset to schema defaults. Derived timestamps
// (started_at, completed_at) and creation metadata are preserved.
type ReplaceTaskRequest struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	Category      string     `json:"category"`
	EstimatedDays int        `json:"estimated_days"`
	ActualDays    int        `json:"actual_days"`
	DueDate       *time.Time `json:"due_date"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	ID uint `json:"id"`
}

// DeleteTaskResponse is the response after deleting a task.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
	ID      uint `json:"id"`
}

// ListCategoriesRequest is the request for listing distinct categories.
type ListCategoriesRequest struct{}

// ListCategoriesResponse is the response containing distinct category names
// in ascending order.
type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

// TaskResponse represents a task in responses.
type TaskResponse struct {
	ID            uint       `json:"id"`
	UserID        uint       `json:"user_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	Category      string     `json:"category"`
	EstimatedDays int        `json:"estimated_days"`
	ActualDays    int        `json:"actual_days"`
	StartedAt     *time.Time `json:"started_at"`
	DueDate       *time.Time `json:"due_date"`
	CompletedAt   *time.Time `json:"completed_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TaskPort defines the interface driving adapters use to interact with the
// task lifecycle core.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, id uint) (*TaskResponse, error)
	ListTasks(ctx context.Context, req *ListTasksRequest) (*ListTasksResponse, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error)
	ReplaceTask(ctx context.Context, req *ReplaceTaskRequest) (*TaskResponse, error)
	DeleteTask(ctx context.Context, id uint) error
	ListCategories(ctx context.Context) ([]string, error)
}
