package planner

import (
	"strings"
	"time"

	"studyplan/models"
	"studyplan/services/scheduling"
)

// defaultTitle names generated sessions when the request leaves it blank.
const defaultTitle = "Study session"

// SessionTimesOf extracts the timestamps the engine reductions work on.
func SessionTimesOf(s models.StudySession) scheduling.SessionTimes {
	return scheduling.SessionTimes{
		ScheduledStart: s.ScheduledStart,
		ScheduledEnd:   s.ScheduledEnd,
		ActualStart:    s.ActualStart,
		ActualEnd:      s.ActualEnd,
	}
}

func sessionTimes(sessions []models.StudySession) []scheduling.SessionTimes {
	out := make([]scheduling.SessionTimes, len(sessions))
	for i, s := range sessions {
		out[i] = SessionTimesOf(s)
	}
	return out
}

func existingOf(sessions []models.StudySession) []scheduling.ExistingSession {
	out := make([]scheduling.ExistingSession, len(sessions))
	for i, s := range sessions {
		out[i] = scheduling.ExistingSession{ScheduledStart: s.ScheduledStart, ScheduledEnd: s.ScheduledEnd}
	}
	return out
}

func (s *DefaultPlannerService) view(session models.StudySession) models.SessionView {
	status := scheduling.ClassifyStatus(SessionTimesOf(session), s.Clock.Now())
	return models.SessionView{StudySession: session, Status: string(status)}
}

func (s *DefaultPlannerService) views(sessions []models.StudySession) []models.SessionView {
	out := make([]models.SessionView, len(sessions))
	for i, session := range sessions {
		out[i] = s.view(session)
	}
	return out
}

func (s *DefaultPlannerService) suggestionRequest(req models.SuggestSlotsRequest) scheduling.SuggestionRequest {
	maxPerDay := 1
	if req.MaxPerDay != nil {
		maxPerDay = *req.MaxPerDay
	}
	gap := scheduling.DefaultGapMinutes
	if req.GapMinutes != nil {
		gap = *req.GapMinutes
	}

	preferred := scheduling.PreferredStart{Text: req.PreferredStart}
	if req.PreferredStartObj != nil {
		preferred.Legacy = &scheduling.ClockTime{Hour: req.PreferredStartObj.HH, Minute: req.PreferredStartObj.MM}
	}
	var start *scheduling.ClockTime
	if ct, ok := preferred.Resolve(); ok {
		start = &ct
	}

	return scheduling.SuggestionRequest{
		Title:          titleOrDefault(req.Title),
		SessionMinutes: req.SessionMinutes,
		TotalMinutes:   req.TotalMinutes,
		Window: scheduling.SuggestionWindow{
			From:     req.Window.From.In(s.Location),
			To:       req.Window.To.In(s.Location),
			Weekdays: req.Window.Days,
		},
		MaxPerDay:      maxPerDay,
		GapMinutes:     gap,
		PreferredStart: start,
	}
}

func (s *DefaultPlannerService) templateItems(items []models.TemplateItemRequest) []scheduling.TemplateItem {
	out := make([]scheduling.TemplateItem, len(items))
	for i, it := range items {
		out[i] = scheduling.TemplateItem{
			DayOffset: it.DayOffset,
			Start:     scheduling.ClockTime{Hour: it.HH, Minute: it.MM},
			Minutes:   it.Minutes,
			Title:     titleOrDefault(it.Title),
			Notes:     it.Notes,
		}
	}
	return out
}

func (s *DefaultPlannerService) availability(in map[string][]models.AvailabilitySlot) scheduling.Availability {
	out := make(scheduling.Availability, len(in))
	for date, slots := range in {
		windows := make([]scheduling.TimeWindow, len(slots))
		for i, slot := range slots {
			windows[i] = scheduling.TimeWindow{Start: slot.Start.In(s.Location), End: slot.End.In(s.Location)}
		}
		out[date] = windows
	}
	return out
}

// hardGaps drops gaps whose times are not "HH:MM".
func hardGaps(in []models.HardGapRequest) []scheduling.HardGap {
	out := make([]scheduling.HardGap, 0, len(in))
	for _, g := range in {
		start, ok1 := scheduling.PreferredStart{Text: g.Start}.Resolve()
		end, ok2 := scheduling.PreferredStart{Text: g.End}.Resolve()
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, scheduling.HardGap{Weekday: g.Day, Start: start, End: end})
	}
	return out
}

func titleOrDefault(title string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	return defaultTitle
}

func dropConflicts(flag *bool) bool {
	return flag == nil || *flag
}

func sumMinutes(drafts []scheduling.SessionDraft) int {
	total := 0
	for _, d := range drafts {
		total += scheduling.MinutesBetween(d.ScheduledStart, d.ScheduledEnd)
	}
	return total
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
