package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Bothaina-Karakrah/tasks-tracker/modules/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AnalyticsModule computes aggregate task statistics. It holds no state of
// its own: every request takes a fresh snapshot from the task module, so the
// figures in one response never mix two points in time.
type AnalyticsModule struct {
	taskPort task.TaskPort
}

// Compile-time interface checks.
var _ mono.Module = (*AnalyticsModule)(nil)
var _ mono.ServiceProviderModule = (*AnalyticsModule)(nil)
var _ mono.DependentModule = (*AnalyticsModule)(nil)

// NewModule creates a new AnalyticsModule.
func NewModule() *AnalyticsModule {
	return &AnalyticsModule{}
}

// Name returns the module name.
func (m *AnalyticsModule) Name() string {
	return "analytics"
}

// Dependencies returns the list of module dependencies.
func (m *AnalyticsModule) Dependencies() []string {
	return []string{"task"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *AnalyticsModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "task" {
		m.taskPort = task.NewTaskAdapter(container)
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *AnalyticsModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "summary", json.Unmarshal, json.Marshal, m.getSummary,
	); err != nil {
		return fmt.Errorf("failed to register summary service: %w", err)
	}

	log.Printf("[analytics] Registered services: services.analytics.summary")
	return nil
}

// getSummary handles the analytics.summary service request.
func (m *AnalyticsModule) getSummary(ctx context.Context, _ GetSummaryRequest, _ *mono.Msg) (Summary, error) {
	// One list call is one consistent snapshot.
	resp, err := m.taskPort.ListTasks(ctx, &task.ListTasksRequest{})
	if err != nil {
		return Summary{}, fmt.Errorf("failed to snapshot tasks: %w", err)
	}

	return Compute(resp.Tasks, time.Now()), nil
}

// Start initializes the module.
func (m *AnalyticsModule) Start(_ context.Context) error {
	if m.taskPort == nil {
		return fmt.Errorf("taskPort dependency not set")
	}
	log.Println("[analytics] Module started (depends on: task)")
	return nil
}

// Stop shuts down the module.
func (m *AnalyticsModule) Stop(_ context.Context) error {
	log.Println("[analytics] Module stopped")
	return nil
}
