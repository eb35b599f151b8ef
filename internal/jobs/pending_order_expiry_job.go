package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type expirePendingOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.ExpirePendingOrdersCommand) (int, error)
}

// PendingOrderExpiryJob cancels orders whose payment outcome did not arrive in
// time.
type PendingOrderExpiryJob struct {
	handler  expirePendingOrdersHandler
	schedule string
	timeout  time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingOrderExpiryJob creates the job. schedule is a six-field cron
// expression (seconds first); orders pending for longer than timeout expire.
func NewPendingOrderExpiryJob(
	handler expirePendingOrdersHandler,
	schedule string,
	timeout time.Duration,
	now func() time.Time,
	logger *slog.Logger,
) *PendingOrderExpiryJob {
	return &PendingOrderExpiryJob{
		handler:  handler,
		schedule: schedule,
		timeout:  timeout,
		now:      now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pending_order_expiry_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *PendingOrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order expiry job started",
		"schedule", j.schedule, "timeout", j.timeout.String())
	return nil
}

// RunOnce expires every order that has been pending since before now minus the
// timeout and returns how many were cancelled.
func (j *PendingOrderExpiryJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewExpirePendingOrdersCommand(j.now().Add(-j.timeout))
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order expiry job failed", "error", err)
		return 0, err
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order expiry job failed", "error", err)
		return 0, err
	}

	if expired > 0 {
		j.logger.InfoContext(ctx, "Expired pending orders", "count", expired)
	}
	return expired, nil
}

// Stop stops the scheduler and waits for a running tick to finish.
func (j *PendingOrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending order expiry job stopped")
}
