package scheduling_test

import (
	"testing"
	"time"

	"studyplan/services/scheduling"
)

func TestWeekStats(t *testing.T) {
	weekStart := date(2026, time.October, 12, 0, 0)
	monday := date(2026, time.October, 12, 9, 0)
	thursday := date(2026, time.October, 15, 17, 0)

	sessions := []scheduling.SessionTimes{
		{
			ScheduledStart: monday,
			ScheduledEnd:   monday.Add(60 * time.Minute),
			ActualStart:    ptr(monday.Add(5 * time.Minute)),
			ActualEnd:      ptr(monday.Add(55 * time.Minute)),
		},
		{
			ScheduledStart: monday.Add(2 * time.Hour),
			ScheduledEnd:   monday.Add(2*time.Hour + 30*time.Minute),
			// Started but never finished.
			ActualStart: ptr(monday.Add(2 * time.Hour)),
		},
		{
			ScheduledStart: thursday,
			ScheduledEnd:   thursday.Add(45 * time.Minute),
			// Finished without a recorded start.
			ActualEnd: ptr(thursday.Add(45 * time.Minute)),
		},
		{
			ScheduledStart: date(2026, time.October, 19, 9, 0),
			ScheduledEnd:   date(2026, time.October, 19, 10, 0),
		},
	}

	got := scheduling.WeekStats(sessions, weekStart)

	want := [scheduling.DaysPerWeek]scheduling.DayStats{
		0: {Planned: 90, Actual: 50, Sessions: 2},
		3: {Planned: 45, Actual: 0, Sessions: 1},
	}
	if got != want {
		t.Fatalf("WeekStats = %+v, want %+v", got, want)
	}
}

func TestWeekStatsEmpty(t *testing.T) {
	got := scheduling.WeekStats(nil, date(2026, time.October, 12, 0, 0))

	var zero [scheduling.DaysPerWeek]scheduling.DayStats
	if got != zero {
		t.Fatalf("WeekStats(nil) = %+v", got)
	}
}
