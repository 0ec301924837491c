// Package scheduling is the study-session planning engine: week bucketing,
// slot suggestion, conflict resolution, capacity accounting and the derived
// session status. Everything here is pure. Callers pass "now" explicitly and
// nothing is logged, persisted or mutated in place.
package scheduling

import "time"

// DaysPerWeek is the number of day buckets in a week window. Monday is 0.
const DaysPerWeek = 7

// TimeWindow is a half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SessionDraft is a candidate session that has not been persisted yet.
type SessionDraft struct {
	Title          string    `json:"title"`
	ScheduledStart time.Time `json:"scheduledStart"`
	ScheduledEnd   time.Time `json:"scheduledEnd"`
	Notes          string    `json:"notes,omitempty"`
}

// Duration returns the planned length of the draft.
func (d SessionDraft) Duration() time.Duration {
	return d.ScheduledEnd.Sub(d.ScheduledStart)
}

// ExistingSession is a committed session used only for overlap checks.
type ExistingSession struct {
	ScheduledStart time.Time `json:"scheduledStart"`
	ScheduledEnd   time.Time `json:"scheduledEnd"`
}

// SessionTimes carries the timestamps the reductions in this package need.
// ActualStart and ActualEnd are nil until the session was started/finished.
type SessionTimes struct {
	ScheduledStart time.Time
	ScheduledEnd   time.Time
	ActualStart    *time.Time
	ActualEnd      *time.Time
}

// ClockTime is a wall-clock time of day.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// On returns the instant at this time of day on the calendar date of d,
// in d's location.
func (c ClockTime) On(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour, c.Minute, 0, 0, d.Location())
}

// SuggestionWindow bounds the calendar days a suggestion may use. Weekdays
// holds ISO weekday numbers, Monday=1 through Sunday=7.
type SuggestionWindow struct {
	From     time.Time
	To       time.Time
	Weekdays []int
}

// SuggestionRequest is the normalized input of SuggestSlots.
type SuggestionRequest struct {
	Title          string
	SessionMinutes int
	TotalMinutes   int
	Window         SuggestionWindow
	// MaxPerDay <= 0 means one session per day.
	MaxPerDay  int
	GapMinutes int
	// PreferredStart nil means the time of day of Window.From.
	PreferredStart *ClockTime
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
