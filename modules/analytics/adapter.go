package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AnalyticsPort defines the interface for retrieving the analytics summary.
type AnalyticsPort interface {
	GetSummary(ctx context.Context) (*Summary, error)
}

// analyticsAdapter implements AnalyticsPort using the service container.
type analyticsAdapter struct {
	container mono.ServiceContainer
}

// NewAnalyticsAdapter creates a new adapter for the analytics service.
func NewAnalyticsAdapter(container mono.ServiceContainer) AnalyticsPort {
	if container == nil {
		panic("analytics adapter requires non-nil ServiceContainer")
	}
	return &analyticsAdapter{container: container}
}

// GetSummary retrieves the analytics summary via the summary service.
func (a *analyticsAdapter) GetSummary(ctx context.Context) (*Summary, error) {
	req := GetSummaryRequest{}
	var resp Summary
	if err := helper.CallRequestReplyService(
		ctx, a.container, "summary", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("summary service call failed: %w", err)
	}
	return &resp, nil
}
