package planner

import (
	"context"
	"fmt"
	"time"

	"studyplan/services/scheduling"
	"studyplan/utils"
)

// Week describes the week at offset relative to the current one.
func (s *DefaultPlannerService) Week(offset int) WeekInfo {
	return weekInfo(scheduling.ComputeWeekWindow(s.now(), offset))
}

func weekInfo(w scheduling.TimeWindow) WeekInfo {
	year, week := scheduling.ISOWeek(w.Start)
	return WeekInfo{
		Start:   w.Start,
		End:     w.End,
		ISOYear: year,
		ISOWeek: week,
		Label:   scheduling.WeekLabel(w.Start),
	}
}

func (s *DefaultPlannerService) WeekCapacity(ctx context.Context, userID string, offset int) (*CapacityReport, error) {
	week := s.Week(offset)
	totals, err := s.Capacity.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load capacity settings: %w", err)
	}
	sessions, err := s.Sessions.FindRange(ctx, userID, week.Start, week.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	buckets := scheduling.AggregateCapacityWithTotals(sessionTimes(sessions), week.Start, totals)
	report := &CapacityReport{Week: week, Days: make([]CapacityDay, len(buckets))}
	for i, b := range buckets {
		report.Days[i] = CapacityDay{
			CapacityBucket: b,
			Date:           dateKey(week.Start.AddDate(0, 0, i)),
			Percent:        b.Percent(),
			Over:           b.Over(),
		}
	}
	return report, nil
}

func (s *DefaultPlannerService) SetDayCapacity(ctx context.Context, userID string, dayIndex, minutes int) error {
	if dayIndex < 0 || dayIndex >= scheduling.DaysPerWeek {
		return fmt.Errorf("%w: day must be between 0 and 6", ErrInvalidCapacity)
	}
	if minutes < 0 || minutes > utils.MaxDailyCapacity {
		return fmt.Errorf("%w: minutes must be between 0 and %d", ErrInvalidCapacity, utils.MaxDailyCapacity)
	}
	if err := s.Capacity.SetDay(ctx, userID, dayIndex, minutes); err != nil {
		return fmt.Errorf("failed to store capacity: %w", err)
	}
	return nil
}

// WeekStats reports the seven days starting at weekStart, which need not be
// a Monday. A zero weekStart means the current week from its Monday.
func (s *DefaultPlannerService) WeekStats(ctx context.Context, userID string, weekStart time.Time) (*WeekStatsReport, error) {
	start := scheduling.ComputeWeekWindow(s.now(), 0).Start
	if !weekStart.IsZero() {
		start = weekStart.In(s.Location)
	}
	end := start.AddDate(0, 0, scheduling.DaysPerWeek)

	sessions, err := s.Sessions.FindRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	days := scheduling.WeekStats(sessionTimes(sessions), start)
	report := &WeekStatsReport{WeekStart: start, Days: make([]StatsDay, len(days))}
	for i, d := range days {
		report.Days[i] = StatsDay{DayStats: d, DayIndex: i, Date: dateKey(start.AddDate(0, 0, i))}
	}
	return report, nil
}
