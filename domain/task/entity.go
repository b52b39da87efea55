package task

import "time"

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Valid reports whether the priority is one of the known levels.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// DefaultCategory is assigned when a task is created without a category.
const DefaultCategory = "General"

// Task is the core domain entity representing a tracked work item.
//
// StartedAt and CompletedAt are derived from status transitions: each is set
// exactly once, the first time the task enters in_progress or completed
// respectively, and is never cleared afterwards.
type Task struct {
	ID            uint         `gorm:"primarykey" json:"id"`
	UserID        uint         `gorm:"index;not null" json:"user_id"`
	Title         string       `gorm:"size:100;not null" json:"title"`
	Description   string       `gorm:"type:text" json:"description"`
	Priority      TaskPriority `gorm:"size:20;not null;default:medium" json:"priority"`
	Status        TaskStatus   `gorm:"size:20;not null;default:todo" json:"status"`
	Category      string       `gorm:"size:50;not null;default:General" json:"category"`
	EstimatedDays int          `gorm:"not null;default:1" json:"estimated_days"`
	ActualDays    int          `gorm:"not null;default:0" json:"actual_days"`
	StartedAt     *time.Time   `json:"started_at"`
	DueDate       *time.Time   `json:"due_date"`
	CompletedAt   *time.Time   `json:"completed_at"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}
