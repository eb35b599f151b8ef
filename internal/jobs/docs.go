// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs use github.com/robfig/cron/v3 with six-field expressions (seconds first).
//
// # Available Jobs
//
// PendingOrderExpiryJob cancels orders that stayed PENDING longer than the
// configured timeout with the message "payment timed out". Rows already locked
// by a consumer handling the same order are skipped and retried on the next tick.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireHandler, jobs.ExpiryConfig{
//		Schedule: "*/30 * * * * *",
//		Timeout:  15 * time.Minute,
//	}, time.Now, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed tick is logged and the next tick tries again; the job never stops on
// its own.
package jobs
