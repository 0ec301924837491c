package scheduling

import "time"

// DayStats aggregates one weekday of a week window.
type DayStats struct {
	Planned  int `json:"planned"`
	Actual   int `json:"actual"`
	Sessions int `json:"sessions"`
}

// WeekStats sums planned and actual minutes per day for the week starting at
// weekStart (Monday = 0). Actual minutes only count when both actual
// timestamps are present; a session that was started but not finished
// contributes nothing to Actual.
func WeekStats(sessions []SessionTimes, weekStart time.Time) [DaysPerWeek]DayStats {
	var days [DaysPerWeek]DayStats
	for _, s := range sessions {
		idx := DayIndexOf(weekStart, s.ScheduledStart)
		if idx < 0 || idx >= DaysPerWeek {
			continue
		}
		days[idx].Planned += roundMinutes(s.ScheduledEnd.Sub(s.ScheduledStart))
		days[idx].Sessions++
		if s.ActualStart != nil && s.ActualEnd != nil {
			days[idx].Actual += roundMinutes(s.ActualEnd.Sub(*s.ActualStart))
		}
	}
	return days
}
