// Package jobs provides the scheduled background tasks of the bidding
// marketplace, built on github.com/robfig/cron/v3. The only job today is the
// stale-delivery reaper; JobManager exists so the composition root keeps a
// single start/stop surface as more jobs appear.
package jobs

import (
	"fmt"
	"log/slog"

	"swiftbid/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleDeliveryJob *StaleDeliveryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	cancelStaleHandler commands.CancelStaleDeliveriesCommandHandler,
	staleGraceMinutes int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleDeliveryJob: NewStaleDeliveryJob(cancelStaleHandler, staleGraceMinutes, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleDeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale delivery job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleDeliveryJob.Stop()
}
