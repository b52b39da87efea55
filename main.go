// Task tracker: a modular monolith exposing task, user, category and
// analytics services over a REST API, with SQLite persistence.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Bothaina-Karakrah/tasks-tracker/modules/analytics"
	"github.com/Bothaina-Karakrah/tasks-tracker/modules/api"
	"github.com/Bothaina-Karakrah/tasks-tracker/modules/task"
	"github.com/Bothaina-Karakrah/tasks-tracker/modules/user"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies
	app.Register(user.NewModule())      // Independent module (no dependencies)
	app.Register(task.NewModule())      // Core domain (depends on user, emits events)
	app.Register(analytics.NewModule()) // Aggregation (depends on task)
	app.Register(api.NewModule())       // Driving adapter (depends on all)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "tasks.db"
	}

	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("SQLite database: %s", dbPath)
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%s):", port)
	log.Println("  POST   /api/v1/tasks           - Create a task")
	log.Println("  GET    /api/v1/tasks           - List tasks (status/priority/category filters)")
	log.Println("  GET    /api/v1/tasks/:id       - Get a task by ID")
	log.Println("  PATCH  /api/v1/tasks/:id       - Partially update a task")
	log.Println("  PUT    /api/v1/tasks/:id       - Fully update a task")
	log.Println("  DELETE /api/v1/tasks/:id       - Delete a task")
	log.Println("  POST   /api/v1/users           - Create a user")
	log.Println("  GET    /api/v1/users           - List users")
	log.Println("  GET    /api/v1/users/:id       - Get a user by ID")
	log.Println("  PATCH  /api/v1/users/:id       - Partially update a user")
	log.Println("  DELETE /api/v1/users/:id       - Delete a user")
	log.Println("  GET    /api/v1/categories      - List distinct task categories")
	log.Println("  GET    /api/v1/analytics       - Task statistics summary")
	log.Println("  GET    /health                 - Health check")
	log.Println("  GET    /metrics                - Prometheus metrics")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
