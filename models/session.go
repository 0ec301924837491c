package models

import "time"

// StudySession is a persisted study block owned by one user.
type StudySession struct {
	ID             string     `bson:"id" json:"id"`
	UserID         string     `bson:"userId" json:"userId"`
	Title          string     `bson:"title" json:"title"`
	ScheduledStart time.Time  `bson:"scheduledStart" json:"scheduledStart"`
	ScheduledEnd   time.Time  `bson:"scheduledEnd" json:"scheduledEnd"`
	ActualStart    *time.Time `bson:"actualStart,omitempty" json:"actualStart,omitempty"`
	ActualEnd      *time.Time `bson:"actualEnd,omitempty" json:"actualEnd,omitempty"`
	Notes          string     `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// SessionView is a StudySession as returned to clients, with the status
// derived at read time.
type SessionView struct {
	StudySession
	Status string `json:"status"`
}

// SessionItemRequest is one session in a create or bulk-create payload.
type SessionItemRequest struct {
	Title          string     `json:"title" binding:"required"`
	ScheduledStart time.Time  `json:"scheduledStart" binding:"required"`
	ScheduledEnd   time.Time  `json:"scheduledEnd" binding:"required"`
	ActualStart    *time.Time `json:"actualStart,omitempty"`
	ActualEnd      *time.Time `json:"actualEnd,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

// BulkCreateSessionsRequest creates several sessions at once.
type BulkCreateSessionsRequest struct {
	Sessions []SessionItemRequest `json:"sessions" binding:"required,dive"`
}

// UpdateSessionRequest is a partial update; nil fields are left untouched.
type UpdateSessionRequest struct {
	Title          *string    `json:"title,omitempty"`
	ScheduledStart *time.Time `json:"scheduledStart,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduledEnd,omitempty"`
	ActualStart    *time.Time `json:"actualStart,omitempty"`
	ActualEnd      *time.Time `json:"actualEnd,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}
