package planner_test

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	capacityRepo "studyplan/database/repository/capacity"
	sessionRepo "studyplan/database/repository/session"
	"studyplan/models"
	"studyplan/services/planner"
	"studyplan/utils"
)

type memorySessions struct {
	mu     sync.Mutex
	byID   map[string]models.StudySession
	nextID int
	bulk   int
}

func newMemorySessions(seed ...models.StudySession) *memorySessions {
	m := &memorySessions{byID: map[string]models.StudySession{}}
	for _, s := range seed {
		m.byID[s.ID] = s
	}
	return m
}

func (m *memorySessions) Create(_ context.Context, s *models.StudySession) (*models.StudySession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID = "s" + strconv.Itoa(m.nextID)
	m.byID[s.ID] = *s
	return s, nil
}

func (m *memorySessions) BulkCreate(ctx context.Context, sessions []models.StudySession) ([]models.StudySession, error) {
	m.bulk++
	for i := range sessions {
		if _, err := m.Create(ctx, &sessions[i]); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

func (m *memorySessions) GetByID(_ context.Context, id string) (*models.StudySession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[id]
	if !ok {
		return nil, sessionRepo.ErrNotFound
	}
	return &s, nil
}

func (m *memorySessions) filter(userID string, keep func(models.StudySession) bool) []models.StudySession {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.StudySession
	for _, s := range m.byID {
		if s.UserID == userID && keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledStart.Before(out[j].ScheduledStart) })
	return out
}

func (m *memorySessions) FindRange(_ context.Context, userID string, from, to time.Time) ([]models.StudySession, error) {
	return m.filter(userID, func(s models.StudySession) bool {
		return !s.ScheduledStart.Before(from) && s.ScheduledStart.Before(to)
	}), nil
}

func (m *memorySessions) FindOverlapping(_ context.Context, userID string, from, to time.Time) ([]models.StudySession, error) {
	return m.filter(userID, func(s models.StudySession) bool {
		return s.ScheduledStart.Before(to) && s.ScheduledEnd.After(from)
	}), nil
}

func (m *memorySessions) Update(_ context.Context, s *models.StudySession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[s.ID]; !ok {
		return sessionRepo.ErrNotFound
	}
	m.byID[s.ID] = *s
	return nil
}

func (m *memorySessions) Delete(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[id]
	if !ok || s.UserID != userID {
		return sessionRepo.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memorySessions) EnsureIndexes(context.Context) error { return nil }

type memoryCapacity struct {
	fields map[string]map[string]string
	def    int
}

func (c *memoryCapacity) Get(_ context.Context, userID string) ([7]int, error) {
	return capacityRepo.DecodeTotals(c.fields[userID], c.def), nil
}

func (c *memoryCapacity) SetDay(_ context.Context, userID string, dayIndex, minutes int) error {
	if c.fields == nil {
		c.fields = map[string]map[string]string{}
	}
	if c.fields[userID] == nil {
		c.fields[userID] = map[string]string{}
	}
	c.fields[userID][strconv.Itoa(dayIndex)] = strconv.Itoa(minutes)
	return nil
}

type recordingReminders struct {
	scheduled []string
}

func (r *recordingReminders) ScheduleSessionReminder(_ context.Context, s models.StudySession) error {
	r.scheduled = append(r.scheduled, s.ID)
	return nil
}

// wednesday is 2026-10-14 10:00 UTC, inside ISO week 42.
var wednesday = time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)

type fixture struct {
	svc       *planner.DefaultPlannerService
	sessions  *memorySessions
	capacity  *memoryCapacity
	reminders *recordingReminders
}

func newFixture(t *testing.T, seed ...models.StudySession) fixture {
	t.Helper()
	f := fixture{
		sessions:  newMemorySessions(seed...),
		capacity:  &memoryCapacity{def: 120},
		reminders: &recordingReminders{},
	}
	f.svc = planner.NewDefaultPlannerService(f.sessions, f.capacity, f.reminders, utils.FixedClock{At: wednesday}, time.UTC)
	return f
}

func at(d, hh, mm int) time.Time {
	return time.Date(2026, time.October, d, hh, mm, 0, 0, time.UTC)
}

func stored(id, user string, start, end time.Time) models.StudySession {
	return models.StudySession{ID: id, UserID: user, Title: "existing", ScheduledStart: start, ScheduledEnd: end}
}

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }
