package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingOrderExpiryJob *PendingOrderExpiryJob
}

// ExpiryConfig holds the scheduling of the pending order expiry job.
type ExpiryConfig struct {
	Schedule string
	Timeout  time.Duration
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	expireHandler expirePendingOrdersHandler,
	expiry ExpiryConfig,
	now func() time.Time,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrderExpiryJob: NewPendingOrderExpiryJob(expireHandler, expiry.Schedule, expiry.Timeout, now, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrderExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending order expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrderExpiryJob.Stop()
}
