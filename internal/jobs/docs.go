// Package jobs provides scheduled background tasks of a tracking node.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second and publishes stored domain events to the event publisher
// 2. PendingBacklogJob - Runs every 30 seconds and logs the pending queue depth per destination
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	relay, err := jobs.NewOutboxRelayJob(publishHandler, 100, logger)
//	backlog := jobs.NewPendingBacklogJob(pendingItemsHandler, logger)
//
//	jobManager := jobs.NewJobManager(relay, backlog)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The relay job ignores an empty outbox and logs every other failure; unpublished
//   events stay in the outbox and are retried on the next run
// - Runs never overlap: a run still in progress makes the scheduler skip the next tick
// - Failed job starts stop any already running jobs
package jobs
