package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/domain/calendar"
	"github.com/careerbridge/recruit-backend-go/internal/domain/scheduling"
)

// CalendarJobs contains calendar-related cron jobs
type CalendarJobs struct {
	coordinator     scheduling.Coordinator
	calendarService calendar.Service
	syncBatchSize   int
}

// NewCalendarJobs creates calendar cron jobs
func NewCalendarJobs(coordinator scheduling.Coordinator, calendarService calendar.Service, syncBatchSize int) *CalendarJobs {
	if syncBatchSize <= 0 {
		syncBatchSize = 50
	}
	return &CalendarJobs{
		coordinator:     coordinator,
		calendarService: calendarService,
		syncBatchSize:   syncBatchSize,
	}
}

// RegisterJobs registers all calendar-related cron jobs
func (j *CalendarJobs) RegisterJobs(scheduler *Scheduler, syncInterval, sweepInterval time.Duration) {
	// Repair interviews whose calendar mirror write failed
	scheduler.AddJob(
		"calendar_sync_retry",
		syncInterval,
		j.RetryPendingSyncs,
	)

	// Roll past upcoming events to completed
	scheduler.AddJob(
		"event_status_sweep",
		sweepInterval,
		j.SweepPastEvents,
	)
}

// RetryPendingSyncs re-mirrors interviews flagged as sync-pending
func (j *CalendarJobs) RetryPendingSyncs(ctx context.Context) error {
	repaired, err := j.coordinator.RetryPendingSyncs(ctx, j.syncBatchSize)
	if err != nil {
		return err
	}
	if repaired > 0 {
		slog.Info("Cron: Repaired pending calendar syncs", "count", repaired)
	}
	return nil
}

// SweepPastEvents marks upcoming events whose start has passed as completed
func (j *CalendarJobs) SweepPastEvents(ctx context.Context) error {
	swept, err := j.calendarService.SweepPastEvents(ctx, time.Now().UTC())
	if err != nil {
		return err
	}
	if swept > 0 {
		slog.Info("Cron: Rolled past events to completed", "count", swept)
	}
	return nil
}
