package interview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"scheduled to confirmed", StatusScheduled, StatusConfirmed, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to rescheduled", StatusScheduled, StatusRescheduled, true},
		{"scheduled to completed", StatusScheduled, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to rescheduled", StatusConfirmed, StatusRescheduled, true},
		{"confirmed to scheduled", StatusConfirmed, StatusScheduled, false},
		{"rescheduled back to scheduled", StatusRescheduled, StatusScheduled, true},
		{"rescheduled to cancelled", StatusRescheduled, StatusCancelled, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestIsAllowedDuration(t *testing.T) {
	t.Parallel()

	for _, d := range DurationValues {
		assert.True(t, IsAllowedDuration(d))
	}
	assert.False(t, IsAllowedDuration(0))
	assert.False(t, IsAllowedDuration(15))
	assert.False(t, IsAllowedDuration(75))
	assert.False(t, IsAllowedDuration(180))
}

func TestInterviewStartEndDateTime(t *testing.T) {
	t.Parallel()

	iv := Interview{
		Date:            time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:30",
		DurationMinutes: 60,
	}

	assert.Equal(t, time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC), iv.StartDateTime())
	assert.Equal(t, time.Date(2026, 9, 15, 15, 30, 0, 0, time.UTC), iv.EndDateTime())
}

func TestInterviewIsActive(t *testing.T) {
	t.Parallel()

	assert.True(t, Interview{Status: StatusScheduled}.IsActive())
	assert.True(t, Interview{Status: StatusConfirmed}.IsActive())
	assert.True(t, Interview{Status: StatusCompleted}.IsActive())
	assert.False(t, Interview{Status: StatusCancelled}.IsActive())
}

func TestInterviewDisplayTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Interview: Dana Putri", Interview{CandidateName: "Dana Putri"}.DisplayTitle())
	assert.Equal(t, "Interview", Interview{}.DisplayTitle())
}

func TestScheduleDetailsValidate(t *testing.T) {
	t.Parallel()

	valid := ScheduleDetails{
		Date:            "2026-09-15",
		StartTime:       "14:30",
		DurationMinutes: 60,
		Type:            "technical",
		CandidateName:   "Dana Putri",
	}
	assert.NoError(t, valid.Validate())

	bad := ScheduleDetails{
		Date:            "15-09-2026",
		StartTime:       "2pm",
		DurationMinutes: 25,
		Type:            "coffee_chat",
	}
	err := bad.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date")
	assert.Contains(t, err.Error(), "start_time")
	assert.Contains(t, err.Error(), "duration_minutes")
	assert.Contains(t, err.Error(), "type")
	assert.Contains(t, err.Error(), "candidate_name")
}
