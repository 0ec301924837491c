package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sessionRepo "studyplan/database/repository/session"
	"studyplan/models"
	"studyplan/services/scheduling"
)

// validateItem rejects a draft the engine would never produce. Bulk
// submissions are all-or-nothing at this layer.
func validateItem(item models.SessionItemRequest) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidSession)
	}
	if !item.ScheduledEnd.After(item.ScheduledStart) {
		return fmt.Errorf("%w: scheduledEnd must be after scheduledStart", ErrInvalidSession)
	}
	if item.ActualStart != nil && item.ActualEnd != nil && item.ActualEnd.Before(*item.ActualStart) {
		return fmt.Errorf("%w: actualEnd must not be before actualStart", ErrInvalidSession)
	}
	return nil
}

func newSession(userID string, item models.SessionItemRequest) models.StudySession {
	return models.StudySession{
		UserID:         userID,
		Title:          strings.TrimSpace(item.Title),
		ScheduledStart: item.ScheduledStart,
		ScheduledEnd:   item.ScheduledEnd,
		ActualStart:    item.ActualStart,
		ActualEnd:      item.ActualEnd,
		Notes:          item.Notes,
	}
}

func (s *DefaultPlannerService) CreateSession(ctx context.Context, userID string, req models.SessionItemRequest) (*models.SessionView, error) {
	if err := validateItem(req); err != nil {
		return nil, err
	}
	session := newSession(userID, req)
	created, err := s.Sessions.Create(ctx, &session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.remind(ctx, *created)
	v := s.view(*created)
	return &v, nil
}

// BulkCreate validates every item before anything is stored.
func (s *DefaultPlannerService) BulkCreate(ctx context.Context, userID string, req models.BulkCreateSessionsRequest) ([]models.SessionView, error) {
	if len(req.Sessions) == 0 {
		return nil, fmt.Errorf("%w: no sessions given", ErrInvalidSession)
	}
	sessions := make([]models.StudySession, len(req.Sessions))
	for i, item := range req.Sessions {
		if err := validateItem(item); err != nil {
			return nil, fmt.Errorf("session %d: %w", i, err)
		}
		sessions[i] = newSession(userID, item)
	}
	return s.persist(ctx, sessions)
}

func (s *DefaultPlannerService) ListWeek(ctx context.Context, userID string, offset int) (*WeekSessions, error) {
	week := s.Week(offset)
	sessions, err := s.Sessions.FindRange(ctx, userID, week.Start, week.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return &WeekSessions{Week: week, Sessions: s.views(sessions)}, nil
}

// owned loads a session and checks it belongs to userID.
func (s *DefaultPlannerService) owned(ctx context.Context, userID, id string) (*models.StudySession, error) {
	session, err := s.Sessions.GetByID(ctx, id)
	if errors.Is(err, sessionRepo.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}
	return session, nil
}

func (s *DefaultPlannerService) GetSession(ctx context.Context, userID, id string) (*models.SessionView, error) {
	session, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	v := s.view(*session)
	return &v, nil
}

func (s *DefaultPlannerService) UpdateSession(ctx context.Context, userID, id string, req models.UpdateSessionRequest) (*models.SessionView, error) {
	session, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	rescheduled := false
	if req.Title != nil {
		session.Title = *req.Title
	}
	if req.ScheduledStart != nil {
		rescheduled = !req.ScheduledStart.Equal(session.ScheduledStart)
		session.ScheduledStart = *req.ScheduledStart
	}
	if req.ScheduledEnd != nil {
		session.ScheduledEnd = *req.ScheduledEnd
	}
	if req.ActualStart != nil {
		session.ActualStart = req.ActualStart
	}
	if req.ActualEnd != nil {
		session.ActualEnd = req.ActualEnd
	}
	if req.Notes != nil {
		session.Notes = *req.Notes
	}

	err = validateItem(models.SessionItemRequest{
		Title:          session.Title,
		ScheduledStart: session.ScheduledStart,
		ScheduledEnd:   session.ScheduledEnd,
		ActualStart:    session.ActualStart,
		ActualEnd:      session.ActualEnd,
	})
	if err != nil {
		return nil, err
	}
	return s.save(ctx, session, rescheduled)
}

// StartSession records the actual start. Starting twice keeps the first time.
func (s *DefaultPlannerService) StartSession(ctx context.Context, userID, id string) (*models.SessionView, error) {
	session, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if session.ActualStart == nil {
		now := s.Clock.Now()
		session.ActualStart = &now
	}
	return s.save(ctx, session, false)
}

// CompleteSession records the actual end, starting the session at the same
// instant if it was never started. A session that already has an actual end
// is returned unchanged.
func (s *DefaultPlannerService) CompleteSession(ctx context.Context, userID, id string) (*models.SessionView, error) {
	session, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	now := s.Clock.Now()
	if session.ActualEnd != nil {
		v := s.view(*session)
		return &v, nil
	}
	if session.ActualStart == nil {
		session.ActualStart = &now
	}
	session.ActualEnd = &now
	return s.save(ctx, session, false)
}

func (s *DefaultPlannerService) DeleteSession(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	err := s.Sessions.Delete(ctx, userID, id)
	if errors.Is(err, sessionRepo.ErrNotFound) {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *DefaultPlannerService) save(ctx context.Context, session *models.StudySession, rescheduled bool) (*models.SessionView, error) {
	err := s.Sessions.Update(ctx, session)
	if errors.Is(err, sessionRepo.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	if rescheduled && scheduling.ClassifyStatus(SessionTimesOf(*session), s.Clock.Now()) == scheduling.StatusUpcoming {
		s.remind(ctx, *session)
	}
	v := s.view(*session)
	return &v, nil
}
