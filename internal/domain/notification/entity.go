package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeInterviewScheduled       NotificationType = "interview_scheduled"
	TypeInterviewRescheduled     NotificationType = "interview_rescheduled"
	TypeInterviewCancelled       NotificationType = "interview_cancelled"
	TypeApplicationStatusChanged NotificationType = "application_status_changed"
)

// AllNotificationTypes returns all available notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		TypeInterviewScheduled,
		TypeInterviewRescheduled,
		TypeInterviewCancelled,
		TypeApplicationStatusChanged,
	}
}

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
