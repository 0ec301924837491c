package scheduling

import "time"

const (
	conflictShift       = 60 * time.Minute
	maxConflictAttempts = 3
)

// Overlaps reports whether [a1, a2) and [b1, b2) intersect. Intervals that
// only touch at an endpoint do not overlap.
func Overlaps(a1, a2, b1, b2 time.Time) bool {
	return a1.Before(b2) && b1.Before(a2)
}

// AvoidConflicts filters candidates against already committed sessions.
//
// With dropConflicts every overlapping candidate is discarded. Otherwise a
// conflicting candidate is moved forward by 60 minutes at a time, keeping its
// duration, for at most 3 moves; the first position free of conflicts is
// kept and the candidate is dropped if none is found. Candidates are not
// checked against each other.
func AvoidConflicts(candidates []SessionDraft, existing []ExistingSession, dropConflicts bool) []SessionDraft {
	out := make([]SessionDraft, 0, len(candidates))
	for _, c := range candidates {
		if !conflicts(c, existing) {
			out = append(out, c)
			continue
		}
		if dropConflicts {
			continue
		}

		moved := c
		for attempt := 0; attempt < maxConflictAttempts && conflicts(moved, existing); attempt++ {
			moved = shift(moved, conflictShift)
		}
		if !conflicts(moved, existing) {
			out = append(out, moved)
		}
	}
	return out
}

func conflicts(d SessionDraft, existing []ExistingSession) bool {
	for _, e := range existing {
		if Overlaps(d.ScheduledStart, d.ScheduledEnd, e.ScheduledStart, e.ScheduledEnd) {
			return true
		}
	}
	return false
}

func shift(d SessionDraft, by time.Duration) SessionDraft {
	d.ScheduledStart = d.ScheduledStart.Add(by)
	d.ScheduledEnd = d.ScheduledEnd.Add(by)
	return d
}
