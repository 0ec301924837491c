package planner

import (
	"context"
	"fmt"
	"time"

	"studyplan/models"
	"studyplan/services/scheduling"
	"studyplan/utils"

	"go.uber.org/zap"
)

// shiftReach is how far past a candidate the conflict resolver may move it.
const shiftReach = 3 * time.Hour

func (s *DefaultPlannerService) Suggest(ctx context.Context, userID string, req models.SuggestSlotsRequest) (*PlanOutcome, error) {
	drafts := scheduling.SuggestSlots(s.suggestionRequest(req))
	return s.resolve(ctx, userID, drafts, req.TotalMinutes, dropConflicts(req.DropConflicts))
}

// Plan suggests sessions and, when req.Commit is set, persists the
// conflict-free result in order.
func (s *DefaultPlannerService) Plan(ctx context.Context, userID string, req models.PlanSessionsRequest) (*PlanOutcome, error) {
	outcome, err := s.Suggest(ctx, userID, req.SuggestSlotsRequest)
	if err != nil {
		return nil, err
	}
	if req.Commit {
		if err := s.commit(ctx, userID, outcome); err != nil {
			return nil, err
		}
	}
	return outcome, nil
}

// PlanTemplate instantiates a week template in the week at req.WeekOffset.
func (s *DefaultPlannerService) PlanTemplate(ctx context.Context, userID string, req models.TemplatePlanRequest) (*PlanOutcome, error) {
	monday := scheduling.ComputeWeekWindow(s.now(), req.WeekOffset).Start
	items := s.templateItems(req.Items)
	drafts := scheduling.PlanFromTemplate(monday, items)

	requested := 0
	for _, d := range drafts {
		requested += scheduling.MinutesBetween(d.ScheduledStart, d.ScheduledEnd)
	}
	outcome, err := s.resolve(ctx, userID, drafts, requested, dropConflicts(req.DropConflicts))
	if err != nil {
		return nil, err
	}
	if req.Commit {
		if err := s.commit(ctx, userID, outcome); err != nil {
			return nil, err
		}
	}
	return outcome, nil
}

// Distribute packs sessions into the given availability, leaving out
// slots that collide with a hard gap or an existing session.
func (s *DefaultPlannerService) Distribute(ctx context.Context, userID string, req models.DistributeRequest) (*DistributeOutcome, error) {
	dist := scheduling.DistributeAcrossAvailability(
		titleOrDefault(req.Title),
		s.availability(req.Availability),
		req.SessionMinutes,
		req.TotalMinutes,
		hardGaps(req.HardGaps),
		s.Location,
	)

	outcome, err := s.resolve(ctx, userID, dist.Sessions, req.TotalMinutes, true)
	if err != nil {
		return nil, err
	}
	return &DistributeOutcome{
		Sessions:         outcome.Sessions,
		RequestedMinutes: req.TotalMinutes,
		MinutesUnplaced:  dist.MinutesUnplaced + outcome.DroppedConflicts*req.SessionMinutes,
	}, nil
}

// resolve runs the conflict resolver against the user's committed sessions
// in the span the candidates (and their possible shifts) cover.
func (s *DefaultPlannerService) resolve(ctx context.Context, userID string, drafts []scheduling.SessionDraft, requested int, drop bool) (*PlanOutcome, error) {
	outcome := &PlanOutcome{
		RequestedMinutes: requested,
		Generated:        len(drafts),
		Sessions:         []scheduling.SessionDraft{},
	}

	if len(drafts) > 0 {
		from, to := span(drafts)
		existing, err := s.Sessions.FindOverlapping(ctx, userID, from, to.Add(shiftReach))
		if err != nil {
			return nil, fmt.Errorf("failed to load existing sessions: %w", err)
		}
		outcome.Sessions = scheduling.AvoidConflicts(drafts, existingOf(existing), drop)
	}

	outcome.DroppedConflicts = outcome.Generated - len(outcome.Sessions)
	outcome.PlannedMinutes = sumMinutes(outcome.Sessions)
	if unplaced := requested - outcome.PlannedMinutes; unplaced > 0 {
		outcome.UnplacedMinutes = unplaced
	}
	return outcome, nil
}

func (s *DefaultPlannerService) commit(ctx context.Context, userID string, outcome *PlanOutcome) error {
	if len(outcome.Sessions) == 0 {
		outcome.Created = []models.SessionView{}
		return nil
	}
	sessions := make([]models.StudySession, len(outcome.Sessions))
	for i, d := range outcome.Sessions {
		sessions[i] = models.StudySession{
			UserID:         userID,
			Title:          d.Title,
			ScheduledStart: d.ScheduledStart,
			ScheduledEnd:   d.ScheduledEnd,
			Notes:          d.Notes,
		}
	}
	created, err := s.persist(ctx, sessions)
	if err != nil {
		return err
	}
	outcome.Created = created
	return nil
}

// persist bulk-creates sessions and schedules their reminders. A reminder
// failure never fails the request.
func (s *DefaultPlannerService) persist(ctx context.Context, sessions []models.StudySession) ([]models.SessionView, error) {
	created, err := s.Sessions.BulkCreate(ctx, sessions)
	if err != nil {
		return nil, fmt.Errorf("failed to create sessions: %w", err)
	}
	for _, session := range created {
		s.remind(ctx, session)
	}
	return s.views(created), nil
}

func (s *DefaultPlannerService) remind(ctx context.Context, session models.StudySession) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.ScheduleSessionReminder(ctx, session); err != nil {
		utils.GetLogger().Warn("Failed to schedule session reminder",
			zap.String("sessionId", session.ID),
			zap.Error(err),
		)
	}
}

func span(drafts []scheduling.SessionDraft) (from, to time.Time) {
	from, to = drafts[0].ScheduledStart, drafts[0].ScheduledEnd
	for _, d := range drafts[1:] {
		if d.ScheduledStart.Before(from) {
			from = d.ScheduledStart
		}
		if d.ScheduledEnd.After(to) {
			to = d.ScheduledEnd
		}
	}
	return from, to
}
