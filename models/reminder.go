package models

import "time"

// SessionReminderPayload is the body of a queued session reminder.
type SessionReminderPayload struct {
	SessionID      string    `json:"sessionId"`
	UserID         string    `json:"userId"`
	Title          string    `json:"title"`
	ScheduledStart time.Time `json:"scheduledStart"`
}
