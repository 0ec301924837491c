package scheduling

import (
	"regexp"
	"strconv"
	"time"
)

// DefaultGapMinutes is the idle time between consecutive suggested sessions
// when the caller does not choose one.
const DefaultGapMinutes = 10

var hhmmPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// PreferredStart is the wire form of a preferred start time. Text is the
// "HH:MM" form; Legacy is the deprecated {hh, mm} object still accepted from
// older clients.
type PreferredStart struct {
	Text   string
	Legacy *ClockTime
}

// Resolve normalizes p into a single time of day. A well-formed Text wins
// over Legacy; ok is false when neither is usable and the caller should fall
// back to the time of day of the window start. Components are clamped to
// 0-23 and 0-59.
func (p PreferredStart) Resolve() (ClockTime, bool) {
	if hhmmPattern.MatchString(p.Text) {
		hh, _ := strconv.Atoi(p.Text[:2])
		mm, _ := strconv.Atoi(p.Text[3:])
		return ClockTime{Hour: clampInt(hh, 0, 23), Minute: clampInt(mm, 0, 59)}, true
	}
	if p.Legacy != nil {
		return ClockTime{
			Hour:   clampInt(p.Legacy.Hour, 0, 23),
			Minute: clampInt(p.Legacy.Minute, 0, 59),
		}, true
	}
	return ClockTime{}, false
}

// SuggestSlots fills the minute budget with fixed-length sessions.
//
// Days from Window.From to Window.To are walked in ascending order. On each
// allowed weekday the cursor starts at the preferred time and up to MaxPerDay
// sessions are emitted back to back, GapMinutes apart. A day's run may spill
// past midnight but stops before it would reach the preferred start of the
// next allowed day in the window. The budget is spent
// greedily on the earliest days: there is no backtracking and no attempt to
// spread sessions evenly. Leftover minutes smaller than one session, or left
// when the window runs out, are dropped; a partial session is never emitted.
//
// A non-positive SessionMinutes or TotalMinutes yields no sessions.
func SuggestSlots(req SuggestionRequest) []SessionDraft {
	if req.SessionMinutes <= 0 || req.TotalMinutes <= 0 {
		return nil
	}

	maxPerDay := req.MaxPerDay
	if maxPerDay <= 0 {
		maxPerDay = 1
	}
	gap := req.GapMinutes
	if gap < 0 {
		gap = 0
	}

	allowed := make(map[int]bool, len(req.Window.Weekdays))
	for _, wd := range req.Window.Weekdays {
		if wd >= 1 && wd <= DaysPerWeek {
			allowed[wd] = true
		}
	}

	from := req.Window.From
	base := ClockTime{Hour: from.Hour(), Minute: from.Minute()}
	if req.PreferredStart != nil {
		base = *req.PreferredStart
	}

	remaining := req.TotalMinutes
	var out []SessionDraft

	for d := from; !d.After(req.Window.To) && remaining > 0; d = d.AddDate(0, 0, 1) {
		if !allowed[IsoWeekday(d)] {
			continue
		}

		cursor := base.On(d)
		limit, bounded := nextDayStart(d, req.Window.To, allowed, base)
		for created := 0; created < maxPerDay && remaining >= req.SessionMinutes; created++ {
			end := cursor.Add(minutes(req.SessionMinutes))
			// A late run may cross midnight but never into the next allowed
			// day's first session.
			if bounded && end.After(limit) {
				break
			}
			out = append(out, SessionDraft{
				Title:          req.Title,
				ScheduledStart: cursor,
				ScheduledEnd:   end,
			})
			remaining -= req.SessionMinutes
			cursor = end.Add(minutes(gap))
		}
	}

	return out
}

// nextDayStart returns the preferred start on the first allowed day after d
// that is still inside the window.
func nextDayStart(d, to time.Time, allowed map[int]bool, base ClockTime) (time.Time, bool) {
	for i := 1; i <= DaysPerWeek; i++ {
		next := d.AddDate(0, 0, i)
		if next.After(to) {
			return time.Time{}, false
		}
		if allowed[IsoWeekday(next)] {
			return base.On(next), true
		}
	}
	return time.Time{}, false
}
