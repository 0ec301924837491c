// Package planner wires the scheduling engine to persistence, per-user
// capacity settings and session reminders.
package planner

import (
	"context"
	"errors"
	"time"

	capacityRepo "studyplan/database/repository/capacity"
	sessionRepo "studyplan/database/repository/session"
	"studyplan/models"
	"studyplan/utils"
)

var (
	ErrInvalidSession  = errors.New("invalid study session")
	ErrSessionNotFound = errors.New("study session not found")
	ErrForbidden       = errors.New("study session belongs to another user")
	ErrInvalidCapacity = errors.New("invalid capacity setting")
)

// ReminderScheduler arranges a reminder before a committed session starts.
type ReminderScheduler interface {
	ScheduleSessionReminder(ctx context.Context, session models.StudySession) error
}

// PlannerService defines planning, session lifecycle and calendar reads.
type PlannerService interface {
	Suggest(ctx context.Context, userID string, req models.SuggestSlotsRequest) (*PlanOutcome, error)
	Plan(ctx context.Context, userID string, req models.PlanSessionsRequest) (*PlanOutcome, error)
	PlanTemplate(ctx context.Context, userID string, req models.TemplatePlanRequest) (*PlanOutcome, error)
	Distribute(ctx context.Context, userID string, req models.DistributeRequest) (*DistributeOutcome, error)

	CreateSession(ctx context.Context, userID string, req models.SessionItemRequest) (*models.SessionView, error)
	BulkCreate(ctx context.Context, userID string, req models.BulkCreateSessionsRequest) ([]models.SessionView, error)
	ListWeek(ctx context.Context, userID string, offset int) (*WeekSessions, error)
	GetSession(ctx context.Context, userID, id string) (*models.SessionView, error)
	UpdateSession(ctx context.Context, userID, id string, req models.UpdateSessionRequest) (*models.SessionView, error)
	StartSession(ctx context.Context, userID, id string) (*models.SessionView, error)
	CompleteSession(ctx context.Context, userID, id string) (*models.SessionView, error)
	DeleteSession(ctx context.Context, userID, id string) error

	Week(offset int) WeekInfo
	WeekCapacity(ctx context.Context, userID string, offset int) (*CapacityReport, error)
	SetDayCapacity(ctx context.Context, userID string, dayIndex, minutes int) error
	WeekStats(ctx context.Context, userID string, weekStart time.Time) (*WeekStatsReport, error)
}

// DefaultPlannerService implements PlannerService.
type DefaultPlannerService struct {
	Sessions  sessionRepo.SessionRepository
	Capacity  capacityRepo.CapacityRepository
	Reminders ReminderScheduler
	Clock     utils.Clock
	// Location anchors week boundaries and preferred start times.
	Location *time.Location
}

// NewDefaultPlannerService returns a service using the system clock when
// clock is nil and time.Local when loc is nil.
func NewDefaultPlannerService(
	sessions sessionRepo.SessionRepository,
	capacity capacityRepo.CapacityRepository,
	reminders ReminderScheduler,
	clock utils.Clock,
	loc *time.Location,
) *DefaultPlannerService {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &DefaultPlannerService{
		Sessions:  sessions,
		Capacity:  capacity,
		Reminders: reminders,
		Clock:     clock,
		Location:  loc,
	}
}

func (s *DefaultPlannerService) now() time.Time {
	return s.Clock.Now().In(s.Location)
}
