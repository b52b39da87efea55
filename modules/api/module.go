package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Bothaina-Karakrah/tasks-tracker/modules/analytics"
	"github.com/Bothaina-Karakrah/tasks-tracker/modules/task"
	"github.com/Bothaina-Karakrah/tasks-tracker/modules/user"
	"github.com/go-monolith/mono"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Default token bucket for the whole API surface.
const (
	rateLimit = 20
	rateBurst = 40
)

// APIModule is the driving adapter that exposes REST endpoints. It calls
// into the core modules through their port interfaces.
type APIModule struct {
	app            *fiber.App
	validate       *validator.Validate
	limiter        *rate.Limiter
	taskPort       task.TaskPort
	userPort       user.UserPort
	analyticsPort  analytics.AnalyticsPort
	requestCounter *prometheus.CounterVec
	errorCounter   *prometheus.CounterVec
	port           string
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule.
func NewModule() *APIModule {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	return &APIModule{
		validate: validator.New(),
		limiter:  rate.NewLimiter(rateLimit, rateBurst),
		requestCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tasktracker_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and method.",
		}, []string{"endpoint", "method"}),
		errorCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tasktracker_http_errors_total",
			Help: "Total number of server errors by endpoint.",
		}, []string{"endpoint"}),
		port: port,
	}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"user", "task", "analytics"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "user":
		m.userPort = user.NewUserAdapter(container)
	case "task":
		m.taskPort = task.NewTaskAdapter(container)
	case "analytics":
		m.analyticsPort = analytics.NewAnalyticsAdapter(container)
	}
}

// Start initializes the Fiber HTTP server.
func (m *APIModule) Start(_ context.Context) error {
	if m.taskPort == nil || m.userPort == nil || m.analyticsPort == nil {
		return fmt.Errorf("port dependencies not set")
	}

	if err := m.registerMetrics(); err != nil {
		return err
	}

	m.app = fiber.New(fiber.Config{
		AppName:               "Task Tracker",
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	m.app.Use(cors.New())
	m.app.Use(m.rateLimiter)
	m.app.Use(m.countRequests)

	m.setupRoutes()

	// Server availability is verified via Health().
	go func() {
		if err := m.app.Listen(":" + m.port); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on :%s", m.port)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port": m.port,
		},
	}
}

// registerMetrics registers the module's collectors. Registration survives
// a stop/start cycle in the same process, where the default registry still
// holds the collectors from the previous start.
func (m *APIModule) registerMetrics() error {
	for _, collector := range []prometheus.Collector{m.requestCounter, m.errorCounter} {
		if err := prometheus.Register(collector); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				return fmt.Errorf("failed to register metrics: %w", err)
			}
		}
	}
	return nil
}

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	m.app.Get("/health", m.healthHandler)
	m.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := m.app.Group("/api/v1")

	tasks := api.Group("/tasks")
	tasks.Post("/", m.createTask)
	tasks.Get("/", m.listTasks)
	tasks.Get("/:id", m.getTask)
	tasks.Patch("/:id", m.updateTask)
	tasks.Put("/:id", m.replaceTask)
	tasks.Delete("/:id", m.deleteTask)

	users := api.Group("/users")
	users.Post("/", m.createUser)
	users.Get("/", m.listUsers)
	users.Get("/:id", m.getUser)
	users.Patch("/:id", m.updateUser)
	users.Delete("/:id", m.deleteUser)

	api.Get("/categories", m.listCategories)
	api.Get("/analytics", m.getAnalytics)
}

// rateLimiter rejects requests over the token bucket with 429.
func (m *APIModule) rateLimiter(c *fiber.Ctx) error {
	if !m.limiter.Allow() {
		return c.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse{
			Error:   "rate_limited",
			Message: "The API is at capacity, try again later.",
		})
	}
	return c.Next()
}

// countRequests records per-endpoint request counts.
func (m *APIModule) countRequests(c *fiber.Ctx) error {
	err := c.Next()
	m.requestCounter.WithLabelValues(c.Route().Path, c.Method()).Inc()
	return err
}

// customErrorHandler handles Fiber errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
