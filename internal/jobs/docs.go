// Package jobs provides scheduled background tasks for the back office.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// 1. OutboxRelayJob - publishes pending outbox messages to Kafka in batches
//
// # Usage
//
//	relay := jobs.NewOutboxRelayJob(&relayHandler, cfg.OutboxRelaySchedule, cfg.OutboxBatchSize, log)
//	jobManager := jobs.NewJobManager(relay, log)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed relay is logged and counted; the messages stay pending and are
// picked up again on the next tick. Overlapping ticks are skipped.
package jobs
