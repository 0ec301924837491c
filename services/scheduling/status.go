package scheduling

import "time"

// SessionStatus is derived from a session's timestamps and the current time.
// It is never stored.
type SessionStatus string

const (
	StatusUpcoming   SessionStatus = "UPCOMING"
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusLate       SessionStatus = "LATE"
	StatusOverdue    SessionStatus = "OVERDUE"
	StatusDone       SessionStatus = "DONE"
)

// Terminal reports whether the status is an end state. LATE is also derived
// for a started session that is still running past its scheduled end, so
// whether a session finished is decided by its actual end, not by this.
func (s SessionStatus) Terminal() bool {
	return s == StatusLate || s == StatusDone
}

// ClassifyStatus derives the lifecycle state of a session at now. The rules
// are checked in order and the first match wins:
//
//  1. finished after the scheduled end: LATE
//  2. finished: DONE
//  3. started and now past the scheduled end: LATE
//  4. started: IN_PROGRESS
//  5. now past the scheduled end: OVERDUE
//  6. otherwise: UPCOMING
func ClassifyStatus(s SessionTimes, now time.Time) SessionStatus {
	switch {
	case s.ActualEnd != nil && s.ActualEnd.After(s.ScheduledEnd):
		return StatusLate
	case s.ActualEnd != nil:
		return StatusDone
	case s.ActualStart != nil && now.After(s.ScheduledEnd):
		return StatusLate
	case s.ActualStart != nil:
		return StatusInProgress
	case now.After(s.ScheduledEnd):
		return StatusOverdue
	default:
		return StatusUpcoming
	}
}
