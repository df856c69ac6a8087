package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AbandonedOrderJob cancels pending, unpaid orders that have sat longer than
// maxAge, releasing their inventory reservations. Runs once a minute.
type AbandonedOrderJob struct {
	handler commands.ReleaseAbandonedOrdersCommandHandler
	cron    *cron.Cron
	maxAge  time.Duration
	logger  *slog.Logger
}

// NewAbandonedOrderJob creates a job that sweeps abandoned orders older than maxAge.
func NewAbandonedOrderJob(
	handler commands.ReleaseAbandonedOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *AbandonedOrderJob {
	return &AbandonedOrderJob{
		handler: handler,
		cron:    cron.New(),
		maxAge:  maxAge,
		logger:  logger.With("component", "abandoned_order_job"),
	}
}

// Start begins the abandoned order sweep, running every minute.
func (j *AbandonedOrderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewReleaseAbandonedOrdersCommand(time.Now().Add(-j.maxAge))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build abandoned order command", "error", cmdErr)
			return
		}

		released, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Abandoned order sweep failed", "error", handleErr)
			return
		}

		if released > 0 {
			j.logger.InfoContext(ctx, "Cancelled abandoned orders", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Abandoned order job started (running every minute)")
	return nil
}

// Stop stops the abandoned order job.
func (j *AbandonedOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Abandoned order job stopped")
}
