package scheduling

import (
	"fmt"
	"math"
	"time"
)

const day = 24 * time.Hour

// ComputeWeekWindow returns Monday 00:00:00.000 through Sunday 23:59:59.999
// of the week offsetWeeks away from the week containing now. Boundaries are
// wall-clock times in now's location.
func ComputeWeekWindow(now time.Time, offsetWeeks int) TimeWindow {
	monday := StartOfWeek(now).AddDate(0, 0, offsetWeeks*7)
	sunday := monday.AddDate(0, 0, DaysPerWeek-1)
	end := time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, int(999*time.Millisecond), sunday.Location())
	return TimeWindow{Start: monday, End: end}
}

// StartOfWeek returns local midnight of the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -mondayIndex(t.Weekday()))
}

// ISOWeek returns the ISO-8601 year and week of the calendar date of t. The
// date is taken in t's location and normalized to UTC midnight, so the result
// never depends on the time of day.
func ISOWeek(t time.Time) (year, week int) {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).ISOWeek()
}

// ISOWeekNumber returns the ISO-8601 week number of t: week 1 is the week
// holding the year's first Thursday.
func ISOWeekNumber(t time.Time) int {
	_, week := ISOWeek(t)
	return week
}

// WeekLabel renders the label shown above a calendar week.
func WeekLabel(weekStart time.Time) string {
	return fmt.Sprintf("Week %d", ISOWeekNumber(weekStart))
}

// DayIndexOf buckets ts by whole days elapsed since weekStart:
// floor((ts - weekStart) / 24h). It measures elapsed time, not calendar
// dates, so a week spanning a DST change shifts the bucket edge by the
// DST offset. Results outside 0..6 mean ts lies outside the week.
func DayIndexOf(weekStart, ts time.Time) int {
	elapsed := ts.Sub(weekStart)
	idx := int(elapsed / day)
	if elapsed < 0 && elapsed%day != 0 {
		idx--
	}
	return idx
}

// IsoWeekday maps time.Weekday onto Monday=1 .. Sunday=7.
func IsoWeekday(t time.Time) int {
	return mondayIndex(t.Weekday()) + 1
}

// MinutesBetween returns the rounded number of minutes from a to b, never
// negative.
func MinutesBetween(a, b time.Time) int {
	m := roundMinutes(b.Sub(a))
	if m < 0 {
		return 0
	}
	return m
}

func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// roundMinutes rounds halves up, matching whole-minute accounting elsewhere.
func roundMinutes(d time.Duration) int {
	return int(math.Floor(d.Minutes() + 0.5))
}
