package jobs

import (
	"fmt"

	"github.com/rs/zerolog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
	logger         zerolog.Logger
}

// NewJobManager creates a job manager around the scheduled jobs.
func NewJobManager(outboxRelayJob *OutboxRelayJob, logger zerolog.Logger) *JobManager {
	return &JobManager{
		outboxRelayJob: outboxRelayJob,
		logger:         logger.With().Str("component", "job_manager").Logger(),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	jm.logger.Info().Msg("All jobs started")
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()
}
