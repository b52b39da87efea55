package api

import "testing"

func TestRegisterMetrics_SurvivesRestart(t *testing.T) {
	m := NewModule()

	if err := m.registerMetrics(); err != nil {
		t.Fatalf("registerMetrics() error = %v", err)
	}

	// A stop/start cycle registers into the same process-wide registry.
	if err := m.registerMetrics(); err != nil {
		t.Fatalf("registerMetrics() after restart error = %v", err)
	}
}
