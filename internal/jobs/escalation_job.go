package jobs

import (
	"context"
	"log/slog"

	"tendering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EscalationJob reconciles cascades whose escalation was missed, for example
// when the process crashed between committing a close and publishing its
// event. Runs every thirty seconds and re-checks each candidate under the
// parent row lock, so a concurrent event-driven escalation is harmless.
type EscalationJob struct {
	handler commands.SweepEscalationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewEscalationJob creates a new job for reconciling stuck cascades.
func NewEscalationJob(handler commands.SweepEscalationsCommandHandler, logger *slog.Logger) *EscalationJob {
	return &EscalationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "escalation_job"),
	}
}

// Start begins the escalation job to run every thirty seconds.
func (j *EscalationJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepEscalationsCommand()

		candidates, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Escalation sweep failed", "error", err)
			return
		}
		if candidates > 0 {
			j.logger.InfoContext(ctx, "Reconciled cascade escalations", "candidates", candidates)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Escalation job started (running every 30 seconds)")
	return nil
}

// Stop stops the escalation job.
func (j *EscalationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Escalation job stopped")
}
