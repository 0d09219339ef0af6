package timeutil

import (
	"testing"
	"time"
)

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 9, 15, 14, 30, 45, 123, time.UTC)
	want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	if got := DateOnly(in); !got.Equal(want) {
		t.Errorf("DateOnly(%v) = %v, want %v", in, got, want)
	}
}

func TestCombine(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timeOfDay string
		want      time.Time
	}{
		{"normal time", "14:30", time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)},
		{"midnight", "00:00", date},
		{"empty defaults to midnight", "", date},
		{"malformed defaults to midnight", "2pm", date},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Combine(date, tt.timeOfDay); !got.Equal(tt.want) {
				t.Errorf("Combine(%v, %q) = %v, want %v", date, tt.timeOfDay, got, tt.want)
			}
		})
	}
}

func TestCombineStripsClockFromDate(t *testing.T) {
	date := time.Date(2026, 9, 15, 8, 45, 0, 0, time.UTC)
	want := time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)
	if got := Combine(date, "14:30"); !got.Equal(want) {
		t.Errorf("Combine = %v, want %v", got, want)
	}
}

func TestInPast(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      time.Time
		timeOfDay string
		want      bool
	}{
		{"earlier today", date, "09:00", true},
		{"later today", date, "15:00", false},
		{"exactly now", date, "12:00", false},
		{"yesterday", date.AddDate(0, 0, -1), "15:00", true},
		{"tomorrow", date.AddDate(0, 0, 1), "09:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InPast(tt.date, tt.timeOfDay, now); got != tt.want {
				t.Errorf("InPast(%v, %q) = %v, want %v", tt.date, tt.timeOfDay, got, tt.want)
			}
		})
	}
}
