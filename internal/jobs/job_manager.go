package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	transitionSweepJob *TransitionSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(scheduler sweeper, logger *slog.Logger) *JobManager {
	return &JobManager{
		transitionSweepJob: NewTransitionSweepJob(scheduler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.transitionSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start transition sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.transitionSweepJob.Stop()
}
