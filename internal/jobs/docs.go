// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field, so a
// schedule has six fields.
//
// # Available Jobs
//
//  1. LowStockAlertJob - logs a warning for every item whose stock is at or
//     below its thresh_stock_alert (hourly unless LOW_STOCK_CRON says otherwise)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewLowStockAlertJob(lowStockHandler, cfg.LowStockCron, log),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Query failures are logged and the next tick retries. A run that is still
// in progress when the next tick fires is skipped.
package jobs
