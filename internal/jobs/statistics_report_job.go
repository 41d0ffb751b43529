package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultStatisticsReportSchedule runs the report at the start of every minute.
const DefaultStatisticsReportSchedule = "0 * * * * *"

// StatisticsReporter renders the delivered-order report.
type StatisticsReporter interface {
	Report() string
}

// StatisticsReportJob periodically logs the delivered-order statistics.
type StatisticsReportJob struct {
	reporter StatisticsReporter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatisticsReportJob creates a job that logs reporter's report on schedule,
// a six-field cron expression with seconds. An empty schedule falls back to
// DefaultStatisticsReportSchedule.
func NewStatisticsReportJob(reporter StatisticsReporter, schedule string, logger *slog.Logger) *StatisticsReportJob {
	if schedule == "" {
		schedule = DefaultStatisticsReportSchedule
	}
	return &StatisticsReportJob{
		reporter: reporter,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "statistics_report_job"),
	}
}

// Start registers the report with the scheduler and starts it.
func (j *StatisticsReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Statistics report job started", "schedule", j.schedule)
	return nil
}

// Run logs the current report once.
func (j *StatisticsReportJob) Run() {
	j.logger.InfoContext(context.Background(), "Delivered orders report", "report", j.reporter.Report())
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *StatisticsReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Statistics report job stopped")
}
