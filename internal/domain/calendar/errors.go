package calendar

import "errors"

var (
	ErrEventNotFound = errors.New("Calendar event not found")

	// ErrEventInterviewManaged rejects direct edits to interview-derived
	// events; those are kept in lockstep with their interview by the
	// scheduling coordinator.
	ErrEventInterviewManaged = errors.New("Interview-derived events cannot be edited directly")

	ErrInvalidDateRange = errors.New("Invalid schedule date range")
	ErrReservedType     = errors.New("Event type \"Interview\" is reserved for mirrored interviews")

	// ErrCacheMiss is returned by a ScheduleCache when no entry exists.
	ErrCacheMiss = errors.New("schedule not cached")
)
