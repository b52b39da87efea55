package task

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// taskAdapter wraps ServiceContainer for type-safe cross-module communication.
// This is the adapter that implements the TaskPort interface.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
// container is the ServiceContainer from the task module received via
// SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// CreateTask creates a new task via the create service.
func (a *taskAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, classifyError("create", err)
	}
	return &resp, nil
}

// GetTask retrieves a task by ID via the get service.
func (a *taskAdapter) GetTask(ctx context.Context, id uint) (*TaskResponse, error) {
	req := GetTaskRequest{ID: id}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, classifyError("get", err)
	}
	return &resp, nil
}

// ListTasks lists tasks matching the filters via the list service.
func (a *taskAdapter) ListTasks(ctx context.Context, req *ListTasksRequest) (*ListTasksResponse, error) {
	var resp ListTasksResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, classifyError("list", err)
	}
	return &resp, nil
}

// UpdateTask partially updates a task via the update service.
func (a *taskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, classifyError("update", err)
	}
	return &resp, nil
}

// ReplaceTask fully replaces a task's mutable fields via the replace service.
func (a *taskAdapter) ReplaceTask(ctx context.Context, req *ReplaceTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "replace", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, classifyError("replace", err)
	}
	return &resp, nil
}

// DeleteTask deletes a task via the delete service.
func (a *taskAdapter) DeleteTask(ctx context.Context, id uint) error {
	req := DeleteTaskRequest{ID: id}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return classifyError("delete", err)
	}
	if !resp.Deleted {
		return ErrNotFound
	}
	return nil
}

// ListCategories lists distinct categories via the categories service.
func (a *taskAdapter) ListCategories(ctx context.Context) ([]string, error) {
	req := ListCategoriesRequest{}
	var resp ListCategoriesResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "categories", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, classifyError("categories", err)
	}
	return resp.Categories, nil
}

// classifyError restores sentinel identity for errors that crossed the
// service boundary, where wrapping does not survive serialization.
func classifyError(service string, err error) error {
	msg := err.Error()
	sentinels := []error{
		ErrNotFound,
		ErrUserNotFound,
		ErrInvalidTitle,
		ErrDueDateInPast,
		ErrInvalidStatus,
		ErrInvalidPriority,
		ErrInvalidEstimate,
	}
	for _, sentinel := range sentinels {
		if strings.Contains(msg, sentinel.Error()) {
			return sentinel
		}
	}
	return fmt.Errorf("%s service call failed: %w", service, err)
}
