package user

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-monolith/mono"
)

// createUser handles the user.create service request.
func (m *UserModule) createUser(_ context.Context, req CreateUserRequest, _ *mono.Msg) (UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	if n := utf8.RuneCountInString(name); n < 3 || n > 50 {
		return UserResponse{}, ErrInvalidName
	}
	if !validEmail(req.Email) {
		return UserResponse{}, ErrInvalidEmail
	}

	// Pre-check for a friendlier error message; the unique index catches
	// the race between check and insert.
	exists, err := m.repo.ExistsByEmail(req.Email)
	if err != nil {
		return UserResponse{}, err
	}
	if exists {
		return UserResponse{}, ErrDuplicateEmail
	}

	user := &User{
		Name:  name,
		Email: req.Email,
	}
	if err := m.repo.Create(user); err != nil {
		return UserResponse{}, err
	}

	return toUserResponse(user), nil
}

// getUser handles the user.get service request.
func (m *UserModule) getUser(_ context.Context, req GetUserRequest, _ *mono.Msg) (UserResponse, error) {
	user, err := m.repo.FindByID(req.ID)
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// listUsers handles the user.list service request.
func (m *UserModule) listUsers(_ context.Context, _ ListUsersRequest, _ *mono.Msg) (ListUsersResponse, error) {
	users, err := m.repo.FindAll()
	if err != nil {
		return ListUsersResponse{}, err
	}

	response := ListUsersResponse{
		Users: make([]UserResponse, 0, len(users)),
		Total: len(users),
	}
	for _, user := range users {
		response.Users = append(response.Users, toUserResponse(user))
	}
	return response, nil
}

// updateUser handles the user.update service request.
func (m *UserModule) updateUser(_ context.Context, req UpdateUserRequest, _ *mono.Msg) (UserResponse, error) {
	user, err := m.repo.FindByID(req.ID)
	if err != nil {
		return UserResponse{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if n := utf8.RuneCountInString(name); n < 3 || n > 50 {
			return UserResponse{}, ErrInvalidName
		}
		user.Name = name
	}
	if req.Email != nil {
		if !validEmail(*req.Email) {
			return UserResponse{}, ErrInvalidEmail
		}
		if *req.Email != user.Email {
			exists, err := m.repo.ExistsByEmail(*req.Email)
			if err != nil {
				return UserResponse{}, err
			}
			if exists {
				return UserResponse{}, ErrDuplicateEmail
			}
		}
		user.Email = *req.Email
	}

	if err := m.repo.Save(user); err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// deleteUser handles the user.delete service request.
// Tasks referencing the user are left untouched.
func (m *UserModule) deleteUser(_ context.Context, req DeleteUserRequest, _ *mono.Msg) (DeleteUserResponse, error) {
	if err := m.repo.Delete(req.ID); err != nil {
		return DeleteUserResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteUserResponse{Deleted: true, ID: req.ID}, nil
}

// validateUser handles the user.validate service request.
func (m *UserModule) validateUser(_ context.Context, req ValidateUserRequest, _ *mono.Msg) (ValidateUserResponse, error) {
	exists, err := m.repo.ExistsByID(req.ID)
	if err != nil {
		return ValidateUserResponse{}, fmt.Errorf("failed to validate user: %w", err)
	}
	return ValidateUserResponse{Valid: exists}, nil
}

// validEmail applies a minimal structural check. Full format validation
// happens at the API boundary.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return utf8.RuneCountInString(email) <= 100 && at > 0 && at < len(email)-1
}

// toUserResponse converts a User entity to a UserResponse.
func toUserResponse(user *User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
