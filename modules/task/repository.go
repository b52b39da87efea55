package task

import (
	"errors"
	"fmt"

	domain "github.com/Bothaina-Karakrah/tasks-tracker/domain/task"
	"gorm.io/gorm"
)

// Filters holds optional equality filters for listing tasks.
type Filters struct {
	Status   string
	Priority string
	Category string
}

// Repository provides access to task storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new task.
func (r *Repository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by ID.
func (r *Repository) FindByID(id uint) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// FindAll retrieves tasks matching the filters in id order. Insertion order
// keeps listing deterministic; the store makes no other ordering promise.
func (r *Repository) FindAll(filters Filters) ([]*domain.Task, error) {
	query := r.db.Order("id ASC")
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Priority != "" {
		query = query.Where("priority = ?", filters.Priority)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	var tasks []*domain.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	return tasks, nil
}

// Save persists all fields of an existing task as a single atomic update,
// so readers never observe a status change without its derived timestamps.
func (r *Repository) Save(task *domain.Task) error {
	if err := r.db.Save(task).Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete removes a task by ID.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&domain.Task{}, id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DistinctCategories returns the distinct non-empty category names across
// all tasks in ascending order.
func (r *Repository) DistinctCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&domain.Task{}).
		Where("category <> ''").
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
