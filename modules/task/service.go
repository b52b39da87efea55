package task

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	domain "github.com/Bothaina-Karakrah/tasks-tracker/domain/task"
	"github.com/Bothaina-Karakrah/tasks-tracker/events"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// createTask handles the task.create service request.
func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	valid, err := m.userPort.ValidateUser(ctx, req.UserID)
	if err != nil {
		return TaskResponse{}, err
	}
	if !valid {
		return TaskResponse{}, ErrUserNotFound
	}

	title := strings.TrimSpace(req.Title)
	if n := utf8.RuneCountInString(title); n < 1 || n > 100 {
		return TaskResponse{}, ErrInvalidTitle
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.TaskPriority(req.Priority)
		if !priority.Valid() {
			return TaskResponse{}, ErrInvalidPriority
		}
	}

	category := req.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	estimated := req.EstimatedDays
	if estimated < 0 {
		return TaskResponse{}, ErrInvalidEstimate
	}
	if estimated == 0 {
		estimated = 1
	}

	if req.DueDate != nil && req.DueDate.Before(time.Now()) {
		return TaskResponse{}, ErrDueDateInPast
	}

	newTask := &domain.Task{
		UserID:        req.UserID,
		Title:         title,
		Description:   req.Description,
		Priority:      priority,
		Status:        domain.StatusTodo,
		Category:      category,
		EstimatedDays: estimated,
		DueDate:       req.DueDate,
	}

	if err := m.repo.Create(newTask); err != nil {
		return TaskResponse{}, err
	}

	m.publishCreated(newTask)

	return toTaskResponse(newTask), nil
}

// getTask handles the task.get service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.repo.FindByID(req.ID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// listTasks handles the task.list service request.
func (m *TaskModule) listTasks(_ context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	if req.Status != "" && !domain.TaskStatus(req.Status).Valid() {
		return ListTasksResponse{}, ErrInvalidStatus
	}
	if req.Priority != "" && !domain.TaskPriority(req.Priority).Valid() {
		return ListTasksResponse{}, ErrInvalidPriority
	}

	tasks, err := m.repo.FindAll(Filters{
		Status:   req.Status,
		Priority: req.Priority,
		Category: req.Category,
	})
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, task := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(task))
	}
	return response, nil
}

// updateTask handles the task.update service request (partial update).
// Only supplied fields change; status transitions derive timestamps.
func (m *TaskModule) updateTask(_ context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.repo.FindByID(req.ID)
	if err != nil {
		return TaskResponse{}, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if n := utf8.RuneCountInString(title); n < 1 || n > 100 {
			return TaskResponse{}, ErrInvalidTitle
		}
		task.Title = title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		if !priority.Valid() {
			return TaskResponse{}, ErrInvalidPriority
		}
		task.Priority = priority
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		if !status.Valid() {
			return TaskResponse{}, ErrInvalidStatus
		}
		task.Status = status
	}
	if req.Category != nil {
		category := *req.Category
		if category == "" {
			category = domain.DefaultCategory
		}
		task.Category = category
	}
	if req.EstimatedDays != nil {
		if *req.EstimatedDays < 0 {
			return TaskResponse{}, ErrInvalidEstimate
		}
		task.EstimatedDays = *req.EstimatedDays
	}
	if req.ActualDays != nil {
		task.ActualDays = *req.ActualDays
	}
	if req.DueDate != nil {
		if req.DueDate.Before(time.Now()) {
			return TaskResponse{}, ErrDueDateInPast
		}
		task.DueDate = req.DueDate
	}

	completedNow := applyStatusTimestamps(task, time.Now())

	if err := m.repo.Save(task); err != nil {
		return TaskResponse{}, err
	}

	if completedNow {
		m.publishCompleted(task)
	}

	return toTaskResponse(task), nil
}

// replaceTask handles the task.replace service request (full update).
// Every mutable field is overwritten; omitted fields reset to schema
// defaults. Derived timestamps are preserved as an audit trail.
func (m *TaskModule) replaceTask(_ context.Context, req ReplaceTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.repo.FindByID(req.ID)
	if err != nil {
		return TaskResponse{}, err
	}

	title := strings.TrimSpace(req.Title)
	if n := utf8.RuneCountInString(title); n < 1 || n > 100 {
		return TaskResponse{}, ErrInvalidTitle
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.TaskPriority(req.Priority)
		if !priority.Valid() {
			return TaskResponse{}, ErrInvalidPriority
		}
	}

	status := domain.StatusTodo
	if req.Status != "" {
		status = domain.TaskStatus(req.Status)
		if !status.Valid() {
			return TaskResponse{}, ErrInvalidStatus
		}
	}

	category := req.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	estimated := req.EstimatedDays
	if estimated < 0 {
		return TaskResponse{}, ErrInvalidEstimate
	}
	if estimated == 0 {
		estimated = 1
	}

	if req.DueDate != nil && req.DueDate.Before(time.Now()) {
		return TaskResponse{}, ErrDueDateInPast
	}

	task.Title = title
	task.Description = req.Description
	task.Priority = priority
	task.Status = status
	task.Category = category
	task.EstimatedDays = estimated
	task.ActualDays = req.ActualDays
	task.DueDate = req.DueDate

	completedNow := applyStatusTimestamps(task, time.Now())

	if err := m.repo.Save(task); err != nil {
		return TaskResponse{}, err
	}

	if completedNow {
		m.publishCompleted(task)
	}

	return toTaskResponse(task), nil
}

// deleteTask handles the task.delete service request.
func (m *TaskModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	task, err := m.repo.FindByID(req.ID)
	if err != nil {
		return DeleteTaskResponse{Deleted: false, ID: req.ID}, err
	}

	if err := m.repo.Delete(req.ID); err != nil {
		return DeleteTaskResponse{Deleted: false, ID: req.ID}, err
	}

	if m.eventBus != nil {
		event := events.TaskDeletedEvent{
			EventID:   uuid.New().String(),
			TaskID:    task.ID,
			UserID:    task.UserID,
			DeletedAt: time.Now(),
		}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskDeleted event for task %d: %v", task.ID, err)
		}
	}

	return DeleteTaskResponse{Deleted: true, ID: req.ID}, nil
}

// listCategories handles the task.categories service request.
func (m *TaskModule) listCategories(_ context.Context, _ ListCategoriesRequest, _ *mono.Msg) (ListCategoriesResponse, error) {
	categories, err := m.repo.DistinctCategories()
	if err != nil {
		return ListCategoriesResponse{}, err
	}
	if len(categories) == 0 {
		categories = []string{domain.DefaultCategory}
	}
	return ListCategoriesResponse{Categories: categories}, nil
}

// applyStatusTimestamps derives started_at and completed_at from the current
// status. Each is set exactly once and never cleared, so re-entering a state
// is idempotent and leaving it keeps the audit trail intact. Reports whether
// the task completed in this mutation.
func applyStatusTimestamps(task *domain.Task, now time.Time) bool {
	if task.Status == domain.StatusInProgress && task.StartedAt == nil {
		task.StartedAt = &now
	}
	if task.Status == domain.StatusCompleted && task.CompletedAt == nil {
		task.CompletedAt = &now
		return true
	}
	return false
}

// publishCreated emits a TaskCreated event. Publishing is best-effort and
// never fails the operation.
func (m *TaskModule) publishCreated(task *domain.Task) {
	if m.eventBus == nil {
		return
	}
	event := events.TaskCreatedEvent{
		EventID:   uuid.New().String(),
		TaskID:    task.ID,
		Title:     task.Title,
		Category:  task.Category,
		Priority:  string(task.Priority),
		UserID:    task.UserID,
		CreatedAt: task.CreatedAt,
	}
	if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
		log.Printf("[task] Warning: failed to publish TaskCreated event for task %d: %v", task.ID, err)
	}
}

// publishCompleted emits a TaskCompleted event. Best-effort.
func (m *TaskModule) publishCompleted(task *domain.Task) {
	if m.eventBus == nil {
		return
	}
	event := events.TaskCompletedEvent{
		EventID:     uuid.New().String(),
		TaskID:      task.ID,
		UserID:      task.UserID,
		ActualDays:  task.ActualDays,
		CompletedAt: *task.CompletedAt,
	}
	if err := events.TaskCompletedV1.Publish(m.eventBus, event, nil); err != nil {
		log.Printf("[task] Warning: failed to publish TaskCompleted event for task %d: %v", task.ID, err)
	}
}

// toTaskResponse converts a domain Task to a TaskResponse.
func toTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:            task.ID,
		UserID:        task.UserID,
		Title:         task.Title,
		Description:   task.Description,
		Priority:      string(task.Priority),
		Status:        string(task.Status),
		Category:      task.Category,
		EstimatedDays: task.EstimatedDays,
		ActualDays:    task.ActualDays,
		StartedAt:     task.StartedAt,
		DueDate:       task.DueDate,
		CompletedAt:   task.CompletedAt,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
}
