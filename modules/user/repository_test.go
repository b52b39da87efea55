package user

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func TestRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	user := &User{Name: "Alice Johnson", Email: "alice@example.com"}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.ID == 0 {
		t.Error("expected store-assigned ID, got 0")
	}

	var found User
	if err := db.First(&found, user.ID).Error; err != nil {
		t.Fatalf("failed to find created user: %v", err)
	}
	if found.Email != user.Email {
		t.Errorf("expected email %q, got %q", user.Email, found.Email)
	}
}

func TestRepository_Create_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	if err := repo.Create(&User{Name: "Alice Johnson", Email: "alice@example.com"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err := repo.Create(&User{Name: "Alice Clone", Email: "alice@example.com"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	user := &User{Name: "Bob Smith", Email: "bob@example.com"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	t.Run("existing user", func(t *testing.T) {
		found, err := repo.FindByID(user.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.Name != user.Name {
			t.Errorf("expected name %q, got %q", user.Name, found.Name)
		}
	})

	t.Run("non-existent user", func(t *testing.T) {
		_, err := repo.FindByID(9999)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRepository_ExistsByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	if err := db.Create(&User{Name: "Charlie Brown", Email: "charlie@example.com"}).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	exists, err := repo.ExistsByEmail("charlie@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail() error = %v", err)
	}
	if !exists {
		t.Error("expected email to exist")
	}

	exists, err = repo.ExistsByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail() error = %v", err)
	}
	if exists {
		t.Error("expected email to not exist")
	}
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	user := &User{Name: "To Be Deleted", Email: "delete-me@example.com"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	t.Run("delete existing user", func(t *testing.T) {
		if err := repo.Delete(user.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		// Hard delete, no residual record
		var count int64
		if err := db.Model(&User{}).Where("id = ?", user.ID).Count(&count).Error; err != nil {
			t.Fatalf("failed to count users: %v", err)
		}
		if count != 0 {
			t.Errorf("expected 0 rows after delete, got %d", count)
		}
	})

	t.Run("delete non-existent user", func(t *testing.T) {
		err := repo.Delete(9999)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
