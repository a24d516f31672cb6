// Package scheduler provides background upstream health monitoring for the
// server mode. It probes the terminology service on a fixed interval and
// records the result in the status container consumed by the health endpoint.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pharmanav/ndcfinder/interfaces"
	"github.com/pharmanav/ndcfinder/logging"
)

// Compile-time check to ensure UpstreamMonitor implements Monitor
var _ interfaces.Monitor = (*UpstreamMonitor)(nil)

// UpstreamMonitor probes the terminology service periodically using
// dependency injection for both the probe target and the status sink.
type UpstreamMonitor struct {
	terminology interfaces.Terminology
	status      interfaces.StatusStore
	scheduler   *gocron.Scheduler
	interval    time.Duration
}

// NewUpstreamMonitor creates a monitor probing every interval.
func NewUpstreamMonitor(terminology interfaces.Terminology, status interfaces.StatusStore, interval time.Duration) *UpstreamMonitor {
	return &UpstreamMonitor{
		terminology: terminology,
		status:      status,
		scheduler:   gocron.NewScheduler(time.Local),
		interval:    interval,
	}
}

// Start runs an initial probe and schedules the recurring ones.
func (m *UpstreamMonitor) Start() error {
	m.probe()

	_, err := m.scheduler.Every(m.interval).Do(m.probe)
	if err != nil {
		logging.Error("Failed to schedule upstream probes", "error", err)
		return fmt.Errorf("failed to schedule upstream probes: %w", err)
	}

	m.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler
func (m *UpstreamMonitor) Stop() {
	m.scheduler.Stop()
}

// probe fetches the RxNorm data version and stores the outcome.
func (m *UpstreamMonitor) probe() {
	version, err := m.terminology.Version()

	status := interfaces.UpstreamStatus{
		RxNavVersion: version,
		Healthy:      err == nil,
		LastChecked:  time.Now(),
	}

	if err != nil {
		status.Error = err.Error()
		logging.Warn("Upstream probe failed", "error", err)
	} else {
		logging.Debug("Upstream probe succeeded", "rxnorm_version", version)
	}

	m.status.SetUpstreamStatus(status)
}
