package planner

import (
	"time"

	"studyplan/models"
	"studyplan/services/scheduling"
)

// PlanOutcome reports what a planning request produced. Shortfall and
// conflicts are not errors; they show up as the difference between the
// requested and planned minutes and as DroppedConflicts.
type PlanOutcome struct {
	Sessions         []scheduling.SessionDraft `json:"sessions"`
	Created          []models.SessionView      `json:"created,omitempty"`
	RequestedMinutes int                       `json:"requestedMinutes"`
	PlannedMinutes   int                       `json:"plannedMinutes"`
	UnplacedMinutes  int                       `json:"unplacedMinutes"`
	Generated        int                       `json:"generated"`
	DroppedConflicts int                       `json:"droppedConflicts"`
}

// DistributeOutcome is a packing of sessions into explicit availability.
type DistributeOutcome struct {
	Sessions         []scheduling.SessionDraft `json:"sessions"`
	RequestedMinutes int                       `json:"requestedMinutes"`
	MinutesUnplaced  int                       `json:"minutesUnplaced"`
}

// WeekInfo describes a week window.
type WeekInfo struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	ISOYear int       `json:"isoYear"`
	ISOWeek int       `json:"isoWeek"`
	Label   string    `json:"label"`
}

// WeekSessions is a user's sessions within one week.
type WeekSessions struct {
	Week     WeekInfo             `json:"week"`
	Sessions []models.SessionView `json:"sessions"`
}

// CapacityDay is one day of a CapacityReport.
type CapacityDay struct {
	scheduling.CapacityBucket
	Date    string `json:"date"`
	Percent int    `json:"percent"`
	Over    bool   `json:"over"`
}

// CapacityReport is the scheduled load of a week against capacity settings.
type CapacityReport struct {
	Week WeekInfo      `json:"week"`
	Days []CapacityDay `json:"days"`
}

// StatsDay is one day of a WeekStatsReport.
type StatsDay struct {
	scheduling.DayStats
	DayIndex int    `json:"dayIndex"`
	Date     string `json:"date"`
}

// WeekStatsReport holds planned and actual minutes per day.
type WeekStatsReport struct {
	WeekStart time.Time  `json:"weekStart"`
	Days      []StatsDay `json:"days"`
}
