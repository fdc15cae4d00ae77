package jobs

import (
	"context"
	"log/slog"

	"swiftbid/internal/core/application/usecases/commands"
	"swiftbid/internal/observability"

	"github.com/robfig/cron/v3"
)

// StaleDeliveryJob periodically cancels pending deliveries whose pickup time
// passed longer ago than the configured grace period. Riders stop seeing
// requests nobody can fulfill anymore, and customers get a definitive status
// instead of a request that hangs open forever.
type StaleDeliveryJob struct {
	handler      commands.CancelStaleDeliveriesCommandHandler
	graceMinutes int
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewStaleDeliveryJob creates the reaper job with the given grace period in
// minutes.
func NewStaleDeliveryJob(
	handler commands.CancelStaleDeliveriesCommandHandler,
	graceMinutes int,
	logger *slog.Logger,
) *StaleDeliveryJob {
	return &StaleDeliveryJob{
		handler:      handler,
		graceMinutes: graceMinutes,
		cron:         cron.New(),
		logger:       logger.With("component", "stale_delivery_job"),
	}
}

// Start begins the job, running once a minute.
func (j *StaleDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleDeliveriesCommand(j.graceMinutes)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale delivery job misconfigured", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale delivery job failed", "error", err)
			return
		}

		if cancelled > 0 {
			observability.StaleDeliveriesCancelledTotal.Add(float64(cancelled))
			j.logger.InfoContext(ctx, "Cancelled stale deliveries", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale delivery job started (running every minute)")
	return nil
}

// Stop stops the job.
func (j *StaleDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale delivery job stopped")
}
