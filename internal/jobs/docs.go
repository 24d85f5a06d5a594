// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. OrderAssignmentJob - Runs every second to dispatch pooled orders to compatible couriers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The job uses the cron expression "* * * * * *" which means it runs every
// second, keeping the pool drain latency low without a dedicated queue.
// Ticks are chained with SkipIfStillRunning: a pass that outlasts its second
// suppresses the following ticks instead of overlapping them.
//
// # Error Handling
//
// An empty pool is a normal outcome and produces no log output; the job logs
// only real failures (store errors, lock timeouts). A failed pass leaves the
// pool untouched and the next tick retries it.
package jobs
