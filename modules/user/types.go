package user

import "time"

// CreateUserRequest is the request for creating a user.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetUserRequest is the request for getting a user.
type GetUserRequest struct {
	ID uint `json:"id"`
}

// UpdateUserRequest is the request for partially updating a user.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	ID    uint    `json:"id"`
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// DeleteUserRequest is the request for deleting a user.
type DeleteUserRequest struct {
	ID uint `json:"id"`
}

// DeleteUserResponse is the response after deleting a user.
type DeleteUserResponse struct {
	Deleted bool `json:"deleted"`
	ID      uint `json:"id"`
}

// ListUsersRequest is the request for listing users.
type ListUsersRequest struct{}

// ListUsersResponse is the response containing all users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// ValidateUserRequest is the request for checking that a user exists.
type ValidateUserRequest struct {
	ID uint `json:"id"`
}

// ValidateUserResponse is the response for a user existence check.
type ValidateUserResponse struct {
	Valid bool `json:"valid"`
}

// UserResponse represents a user in responses.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
