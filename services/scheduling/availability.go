package scheduling

import (
	"sort"
	"time"
)

// Availability maps a calendar date ("2006-01-02") to the free windows of
// that day.
type Availability map[string][]TimeWindow

// HardGap blocks a time range on every occurrence of an ISO weekday
// (Monday=1 .. Sunday=7).
type HardGap struct {
	Weekday int       `json:"day"`
	Start   ClockTime `json:"start"`
	End     ClockTime `json:"end"`
}

// Distribution is the result of DistributeAcrossAvailability.
type Distribution struct {
	Sessions        []SessionDraft `json:"sessions"`
	MinutesUnplaced int            `json:"minutesUnplaced"`
}

// DistributeAcrossAvailability packs back-to-back sessions into explicit
// free windows, earliest date first. A window touching a hard gap of its
// weekday is skipped entirely, as is any window shorter than one session.
// Only whole sessions are placed; whatever budget is left is reported in
// MinutesUnplaced. Date keys that do not parse are ignored.
func DistributeAcrossAvailability(title string, availability Availability, sessionMinutes, totalMinutes int, gaps []HardGap, loc *time.Location) Distribution {
	remaining := totalMinutes
	if remaining < 0 {
		remaining = 0
	}
	if sessionMinutes <= 0 {
		return Distribution{MinutesUnplaced: remaining}
	}
	if loc == nil {
		loc = time.Local
	}

	dates := make([]string, 0, len(availability))
	for d := range availability {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var out []SessionDraft
	for _, date := range dates {
		if remaining < sessionMinutes {
			break
		}
		dayStart, err := time.ParseInLocation("2006-01-02", date, loc)
		if err != nil {
			continue
		}

		for _, w := range availability[date] {
			if remaining < sessionMinutes {
				break
			}
			if blockedByGap(w, dayStart, gaps) {
				continue
			}
			count := MinutesBetween(w.Start, w.End) / sessionMinutes
			for i := 0; i < count && remaining >= sessionMinutes; i++ {
				start := w.Start.Add(minutes(i * sessionMinutes))
				out = append(out, SessionDraft{
					Title:          title,
					ScheduledStart: start,
					ScheduledEnd:   start.Add(minutes(sessionMinutes)),
				})
				remaining -= sessionMinutes
			}
		}
	}

	return Distribution{Sessions: out, MinutesUnplaced: remaining}
}

func blockedByGap(w TimeWindow, dayStart time.Time, gaps []HardGap) bool {
	wd := IsoWeekday(dayStart)
	for _, g := range gaps {
		if g.Weekday != wd {
			continue
		}
		if Overlaps(w.Start, w.End, g.Start.On(dayStart), g.End.On(dayStart)) {
			return true
		}
	}
	return false
}
