package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// sweeper is the slice of the scheduler the sweep job drives.
type sweeper interface {
	Sweep(ctx context.Context) error
}

// TransitionSweepJob periodically fires persisted status transitions that
// came due without an armed timer. Runs every second so recovered chains
// resume almost immediately after a restart.
type TransitionSweepJob struct {
	scheduler sweeper
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewTransitionSweepJob creates the recovery sweep job.
func NewTransitionSweepJob(scheduler sweeper, logger *slog.Logger) *TransitionSweepJob {
	return &TransitionSweepJob{
		scheduler: scheduler,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "transition_sweep_job"),
	}
}

// Start begins the sweep job to run every second.
func (j *TransitionSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.scheduler.Sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Transition sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Transition sweep job started (running every second)")
	return nil
}

// Stop stops the sweep job.
func (j *TransitionSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Transition sweep job stopped")
}
