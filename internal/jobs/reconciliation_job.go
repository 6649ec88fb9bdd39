package jobs

import (
	"context"
	"log/slog"

	"waterinfra/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReconciliationJob periodically repairs stale current assignment pointers.
// A pointer goes stale when an assignment is retired or re-homed through a
// path that could not update the owning box in the same transaction.
type ReconciliationJob struct {
	handler  commands.ReconcileCurrentAssignmentsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReconciliationJob creates a reconciliation job with the given cron
// schedule (standard five-field expression).
func NewReconciliationJob(
	handler commands.ReconcileCurrentAssignmentsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ReconciliationJob {
	return &ReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "reconciliation_job"),
	}
}

// Start schedules the reconciliation sweep.
func (j *ReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileCurrentAssignmentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Reconciliation sweep failed", "error", err)
			return
		}

		j.logger.DebugContext(ctx, "Reconciliation sweep completed")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *ReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation job stopped")
}
