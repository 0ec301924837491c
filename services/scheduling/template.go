package scheduling

import (
	"sort"
	"time"
)

// TemplateItem is one recurring entry of a week template.
type TemplateItem struct {
	DayOffset int // 0 = Monday
	Start     ClockTime
	Minutes   int
	Title     string
	Notes     string
}

// PlanFromTemplate instantiates a week template on the week starting at
// monday. Items with a day offset outside 0..6 or a non-positive length are
// skipped. The result is ordered by start.
func PlanFromTemplate(monday time.Time, items []TemplateItem) []SessionDraft {
	out := make([]SessionDraft, 0, len(items))
	for _, it := range items {
		if it.DayOffset < 0 || it.DayOffset >= DaysPerWeek || it.Minutes <= 0 {
			continue
		}
		at := ClockTime{
			Hour:   clampInt(it.Start.Hour, 0, 23),
			Minute: clampInt(it.Start.Minute, 0, 59),
		}
		start := at.On(monday.AddDate(0, 0, it.DayOffset))
		out = append(out, SessionDraft{
			Title:          it.Title,
			ScheduledStart: start,
			ScheduledEnd:   start.Add(minutes(it.Minutes)),
			Notes:          it.Notes,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledStart.Before(out[j].ScheduledStart)
	})
	return out
}
