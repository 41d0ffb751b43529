// Package jobs runs the service's background tasks on github.com/robfig/cron/v3
// schedules.
//
// StatisticsReportJob logs the delivered-order report (count, revenue, average per
// order). Its schedule is a cron expression with a leading seconds field, taken
// from STATISTICS_REPORT_SCHEDULE; the default fires at the start of every minute.
//
// JobManager starts and stops jobs as a group:
//
//	jobManager := jobs.NewJobManager(stats, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A job that fails to start (for example, because of an invalid schedule) makes
// StartAll stop the jobs that were already running.
package jobs
