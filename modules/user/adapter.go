package user

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// UserPort defines the interface other modules use for user operations.
type UserPort interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	GetUser(ctx context.Context, id uint) (*UserResponse, error)
	ListUsers(ctx context.Context) (*ListUsersResponse, error)
	UpdateUser(ctx context.Context, req *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, id uint) error
	ValidateUser(ctx context.Context, id uint) (bool, error)
}

// userAdapter wraps ServiceContainer for type-safe cross-module communication.
type userAdapter struct {
	container mono.ServiceContainer
}

// NewUserAdapter creates a new adapter for user services.
// container is the ServiceContainer from the user module received via
// SetDependencyServiceContainer.
func NewUserAdapter(container mono.ServiceContainer) UserPort {
	if container == nil {
		panic("user adapter requires non-nil ServiceContainer")
	}
	return &userAdapter{container: container}
}

// CreateUser creates a new user via the create service.
func (a *userAdapter) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	var resp UserResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, classifyError("create", err)
	}
	return &resp, nil
}

// GetUser retrieves a user by ID via the get service.
func (a *userAdapter) GetUser(ctx context.Context, id uint) (*UserResponse, error) {
	req := GetUserRequest{ID: id}
	var resp UserResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, classifyError("get", err)
	}
	return &resp, nil
}

// ListUsers lists all users via the list service.
func (a *userAdapter) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	req := ListUsersRequest{}
	var resp ListUsersResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, classifyError("list", err)
	}
	return &resp, nil
}

// UpdateUser partially updates a user via the update service.
func (a *userAdapter) UpdateUser(ctx context.Context, req *UpdateUserRequest) (*UserResponse, error) {
	var resp UserResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, classifyError("update", err)
	}
	return &resp, nil
}

// DeleteUser deletes a user via the delete service.
func (a *userAdapter) DeleteUser(ctx context.Context, id uint) error {
	req := DeleteUserRequest{ID: id}
	var resp DeleteUserResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return classifyError("delete", err)
	}
	return nil
}

// ValidateUser checks whether a user exists via the validate service.
func (a *userAdapter) ValidateUser(ctx context.Context, id uint) (bool, error) {
	req := ValidateUserRequest{ID: id}
	var resp ValidateUserResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "validate", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return false, classifyError("validate", err)
	}
	return resp.Valid, nil
}

// classifyError restores sentinel identity for errors that crossed the
// service boundary, where wrapping does not survive serialization.
func classifyError(service string, err error) error {
	msg := err.Error()
	for _, sentinel := range []error{ErrNotFound, ErrDuplicateEmail, ErrInvalidName, ErrInvalidEmail} {
		if strings.Contains(msg, sentinel.Error()) {
			return sentinel
		}
	}
	return fmt.Errorf("%s service call failed: %w", service, err)
}
