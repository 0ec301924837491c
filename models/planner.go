package models

import "time"

// PlanningWindow bounds a suggestion. Days holds ISO weekdays, 1=Monday .. 7=Sunday.
type PlanningWindow struct {
	From time.Time `json:"from" binding:"required"`
	To   time.Time `json:"to" binding:"required"`
	Days []int     `json:"days"`
}

// LegacyStartTime is the deprecated object form of a preferred start time.
type LegacyStartTime struct {
	HH int `json:"hh"`
	MM int `json:"mm"`
}

// SuggestSlotsRequest asks for sessions filling a minute budget.
type SuggestSlotsRequest struct {
	Title          string         `json:"title"`
	SessionMinutes int            `json:"sessionMinutes"`
	TotalMinutes   int            `json:"totalMinutes"`
	Window         PlanningWindow `json:"window"`
	MaxPerDay      *int           `json:"maxPerDay,omitempty"`
	GapMinutes     *int           `json:"gapMinutes,omitempty"`
	// PreferredStart is "HH:MM" in the server's planning timezone.
	PreferredStart string `json:"preferredStart,omitempty"`
	// Deprecated: use PreferredStart.
	PreferredStartObj *LegacyStartTime `json:"preferredStartObj,omitempty"`
	// DropConflicts defaults to true; false tries to move conflicting
	// sessions instead.
	DropConflicts *bool `json:"dropConflicts,omitempty"`
}

// PlanSessionsRequest is a suggestion that is persisted when Commit is set.
type PlanSessionsRequest struct {
	SuggestSlotsRequest
	Commit bool `json:"commit"`
}

// TemplateItemRequest is one entry of a recurring week template.
type TemplateItemRequest struct {
	DayOffset int    `json:"dayOffset"`
	HH        int    `json:"hh"`
	MM        int    `json:"mm"`
	Minutes   int    `json:"minutes"`
	Title     string `json:"title"`
	Notes     string `json:"notes,omitempty"`
}

// TemplatePlanRequest instantiates a week template.
type TemplatePlanRequest struct {
	WeekOffset    int                   `json:"weekOffset"`
	Items         []TemplateItemRequest `json:"items" binding:"required"`
	DropConflicts *bool                 `json:"dropConflicts,omitempty"`
	Commit        bool                  `json:"commit"`
}

// AvailabilitySlot is a free window on one day.
type AvailabilitySlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// HardGapRequest blocks "HH:MM"-"HH:MM" on an ISO weekday.
type HardGapRequest struct {
	Day   int    `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// DistributeRequest packs sessions into explicit availability.
type DistributeRequest struct {
	Title          string                        `json:"title"`
	SessionMinutes int                           `json:"sessionMinutes"`
	TotalMinutes   int                           `json:"totalMinutes"`
	Availability   map[string][]AvailabilitySlot `json:"availability" binding:"required"`
	HardGaps       []HardGapRequest              `json:"hardGaps,omitempty"`
}

// UpdateCapacityRequest sets the study capacity of one weekday.
type UpdateCapacityRequest struct {
	Minutes *int `json:"minutes" binding:"required"`
}
