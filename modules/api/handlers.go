package api

import (
	"github.com/Bothaina-Karakrah/tasks-tracker/modules/task"
	"github.com/Bothaina-Karakrah/tasks-tracker/modules/user"
	"github.com/gofiber/fiber/v2"
)

// parseID extracts a positive numeric id from the route parameters.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.port,
		},
	})
}

// createTask handles POST /api/v1/tasks.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, "Invalid request body")
	}
	if err := m.validate.Struct(&req); err != nil {
		return validationError(c, err.Error())
	}

	resp, err := m.taskPort.CreateTask(c.Context(), &task.CreateTaskRequest{
		UserID:        req.UserID,
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		Category:      req.Category,
		EstimatedDays: req.EstimatedDays,
		DueDate:       req.DueDate,
	})
	if err != nil {
		return m.coreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// listTasks handles GET /api/v1/tasks with optional status, priority and
// category equality filters.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	resp, err := m.taskPort.ListTasks(c.Context(), &task.ListTasksRequest{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
	})
	if err != nil {
		return m.coreError(c, err)
	}
	return c.JSON(resp)
}

// getTask handles GET /api/v1/tasks/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return validationError(c, "Task ID must be a positive integer")
	}

	resp, err := m.taskPort.GetTask(c.Context(), id)
	if err != nil {
		return m.coreError(c, err)
	}
	return c.JSON(resp)
}

// updateTask handles PATCH /api/v1/tasks/:id (partial update).
func (m *APIModule) updateTask(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return validationError(c, "Task ID must be a positive integer")
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, "Invalid request body")
	}
	if err := m.validate.Struct(&req); err != nil {
		return validationError(c, err.Error())
	}

	resp, err := m.taskPort.UpdateTask(c.Context(), &task.UpdateTaskRequest{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		Status:        req.Status,
		Category:      req.Category,
		EstimatedDays: req.EstimatedDays,
		ActualDays:    req.ActualDays,
		DueDate:       req.DueDate,
	})
	if err != nil {
		return m.coreError(c, err)
	}
	return c.JSON(resp)
}

// replaceTask handles PUT /api/v1/tasks/:id (full update).
func (m *APIModule) replaceTask(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return validationError(c, "Task ID must be a positive integer")
	}

	var req ReplaceTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, "Invalid request body")
	}
	if err := m.validate.Struct(&req); err != nil {
		return validationError(c, err.Error())
	}

	resp, err := m.taskPort.ReplaceTask(c.Context(), &task.ReplaceTaskRequest{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		Status:        req.Status,
		Category:      req.Category,
		EstimatedDays: req.EstimatedDays,
		ActualDays:    req.ActualDays,
		DueDate:       req.DueDate,
	})
	if err != nil {
		return m.coreError(c, err)
	}
	return c.JSON(resp)
}

// deleteTask handles DELETE /api/v1/tasks/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return validationError(c, "Task ID must be a positive integer")
	}

	if err := m.taskPort.DeleteTask(c.Context(), id); err != nil {
		return m.coreError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// createUser handles POST /api/v1/users.
func (m *APIModule) createUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, "Invalid request body")
	}
	if err := m.validate.Struct(&req); err != nil {
		return validationError(c, err.Error())
	}

	resp, err := m.userPort.CreateUser(c.Context(), &user.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return m.coreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// listUsers handles GET /api/v1/users.
func (m *APIModule) listUsers(c *fiber.Ctx) error {
	resp, err := m.userPort.ListUsers(c.Context())
	if err != nil {
		return m.coreError(c, err)
	}
	return c.JSON(resp)
}

// getUser handles GET /api/v1/users/:id.
func (m *APIModule) getUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return validationError(c, "User ID must be a positive integer")
	}

	resp, err := m.userPort.GetUser(c.Context(), id)
	if err != nil {
		return m.coreError(c, err)
	}
	return c.JSON(resp)
}

// updateUser handles PATCH /api/v1/users/:id.
func (m *APIModule) updateUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return validationError(c, "User ID must be a positive integer")
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, "Invalid request body")
	}
	if err := m.validate.Struct(&req); err != nil {
		return validationError(c, err.Error())
	}

	resp, err := m.userPort.UpdateUser(c.Context(), &user.UpdateUserRequest{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return m.coreError(c, err)
	}
	return c.JSON(resp)
}

// deleteUser handles DELETE /api/v1/users/:id.
func (m *APIModule) deleteUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return validationError(c, "User ID must be a positive integer")
	}

	if err := m.userPort.DeleteUser(c.Context(), id); err != nil {
		return m.coreError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// listCategories handles GET /api/v1/categories. Responds with the distinct
// category names in ascending order, ["General"] when no tasks exist.
func (m *APIModule) listCategories(c *fiber.Ctx) error {
	categories, err := m.taskPort.ListCategories(c.Context())
	if err != nil {
		return m.coreError(c, err)
	}
	return c.JSON(categories)
}

// getAnalytics handles GET /api/v1/analytics.
func (m *APIModule) getAnalytics(c *fiber.Ctx) error {
	summary, err := m.analyticsPort.GetSummary(c.Context())
	if err != nil {
		return m.coreError(c, err)
	}
	return c.JSON(summary)
}
