package user

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// newTestModule builds a UserModule over an in-memory database.
func newTestModule(t *testing.T) *UserModule {
	t.Helper()
	db := setupTestDB(t)
	return &UserModule{db: db, repo: NewRepository(db)}
}

func TestService_CreateUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr error
	}{
		{
			name: "valid user",
			req:  CreateUserRequest{Name: "Alice Johnson", Email: "alice@example.com"},
		},
		{
			name:    "name too short",
			req:     CreateUserRequest{Name: "Al", Email: "al@example.com"},
			wantErr: ErrInvalidName,
		},
		{
			// 30 characters but 60 bytes; the limit counts characters.
			name: "multibyte name within limit",
			req:  CreateUserRequest{Name: strings.Repeat("م", 30), Email: "noor@example.com"},
		},
		{
			name:    "multibyte name over limit",
			req:     CreateUserRequest{Name: strings.Repeat("م", 51), Email: "noor@example.com"},
			wantErr: ErrInvalidName,
		},
		{
			name:    "missing email",
			req:     CreateUserRequest{Name: "Alice Johnson"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "malformed email",
			req:     CreateUserRequest{Name: "Alice Johnson", Email: "not-an-email"},
			wantErr: ErrInvalidEmail,
		},
		{
			// 92 characters but 172 bytes; the limit counts characters.
			name: "multibyte email within limit",
			req:  CreateUserRequest{Name: "Alice Johnson", Email: strings.Repeat("م", 80) + "@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModule(t)
			resp, err := m.createUser(ctx, tt.req, nil)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("createUser() error = %v", err)
			}
			if resp.ID == 0 {
				t.Error("expected store-assigned ID, got 0")
			}
			if resp.Email != tt.req.Email {
				t.Errorf("expected email %q, got %q", tt.req.Email, resp.Email)
			}
		})
	}
}

func TestService_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	m := newTestModule(t)

	if _, err := m.createUser(ctx, CreateUserRequest{Name: "Alice Johnson", Email: "alice@example.com"}, nil); err != nil {
		t.Fatalf("createUser() error = %v", err)
	}

	_, err := m.createUser(ctx, CreateUserRequest{Name: "Alice Clone", Email: "alice@example.com"}, nil)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestService_UpdateUser(t *testing.T) {
	ctx := context.Background()
	m := newTestModule(t)

	created, err := m.createUser(ctx, CreateUserRequest{Name: "Bob Smith", Email: "bob@example.com"}, nil)
	if err != nil {
		t.Fatalf("createUser() error = %v", err)
	}

	t.Run("partial update changes only supplied fields", func(t *testing.T) {
		name := "Robert Smith"
		resp, err := m.updateUser(ctx, UpdateUserRequest{ID: created.ID, Name: &name}, nil)
		if err != nil {
			t.Fatalf("updateUser() error = %v", err)
		}
		if resp.Name != name {
			t.Errorf("expected name %q, got %q", name, resp.Name)
		}
		if resp.Email != created.Email {
			t.Errorf("expected email unchanged %q, got %q", created.Email, resp.Email)
		}
	})

	t.Run("update to taken email conflicts", func(t *testing.T) {
		if _, err := m.createUser(ctx, CreateUserRequest{Name: "Carol Danvers", Email: "carol@example.com"}, nil); err != nil {
			t.Fatalf("createUser() error = %v", err)
		}
		email := "carol@example.com"
		_, err := m.updateUser(ctx, UpdateUserRequest{ID: created.ID, Email: &email}, nil)
		if !errors.Is(err, ErrDuplicateEmail) {
			t.Errorf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("non-existent user", func(t *testing.T) {
		name := "Nobody"
		_, err := m.updateUser(ctx, UpdateUserRequest{ID: 9999, Name: &name}, nil)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestService_ValidateUser(t *testing.T) {
	ctx := context.Background()
	m := newTestModule(t)

	created, err := m.createUser(ctx, CreateUserRequest{Name: "Dave Grohl", Email: "dave@example.com"}, nil)
	if err != nil {
		t.Fatalf("createUser() error = %v", err)
	}

	resp, err := m.validateUser(ctx, ValidateUserRequest{ID: created.ID}, nil)
	if err != nil {
		t.Fatalf("validateUser() error = %v", err)
	}
	if !resp.Valid {
		t.Error("expected user to be valid")
	}

	resp, err = m.validateUser(ctx, ValidateUserRequest{ID: 9999}, nil)
	if err != nil {
		t.Fatalf("validateUser() error = %v", err)
	}
	if resp.Valid {
		t.Error("expected unknown user to be invalid")
	}
}

func TestService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	m := newTestModule(t)

	created, err := m.createUser(ctx, CreateUserRequest{Name: "Eve Online", Email: "eve@example.com"}, nil)
	if err != nil {
		t.Fatalf("createUser() error = %v", err)
	}

	resp, err := m.deleteUser(ctx, DeleteUserRequest{ID: created.ID}, nil)
	if err != nil {
		t.Fatalf("deleteUser() error = %v", err)
	}
	if !resp.Deleted {
		t.Error("expected Deleted = true")
	}

	_, err = m.getUser(ctx, GetUserRequest{ID: created.ID}, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
