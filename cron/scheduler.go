package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyplan/models"
	"studyplan/services/tasks"
	"studyplan/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Enqueuer is the part of *asynq.Client the scheduler needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqReminderScheduler queues a reminder lead before each session start.
type AsynqReminderScheduler struct {
	Queue Enqueuer
	Lead  time.Duration
	Clock utils.Clock
}

func NewAsynqReminderScheduler(queue Enqueuer, lead time.Duration, clock utils.Clock) *AsynqReminderScheduler {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &AsynqReminderScheduler{Queue: queue, Lead: lead, Clock: clock}
}

// ScheduleSessionReminder skips sessions whose reminder time has passed.
// Re-scheduling the same start is a no-op.
func (s *AsynqReminderScheduler) ScheduleSessionReminder(ctx context.Context, session models.StudySession) error {
	fireAt := session.ScheduledStart.Add(-s.Lead)
	if !fireAt.After(s.Clock.Now()) {
		return nil
	}

	payload := models.SessionReminderPayload{
		SessionID:      session.ID,
		UserID:         session.UserID,
		Title:          session.Title,
		ScheduledStart: session.ScheduledStart,
	}
	task, opts, err := tasks.NewSessionReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}

	info, err := s.Queue.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	utils.GetLogger().Debug("Session reminder queued",
		zap.String("sessionId", session.ID),
		zap.String("taskId", info.ID),
		zap.Time("fireAt", fireAt),
	)
	return nil
}

// NoopReminderScheduler is used when reminders are disabled.
type NoopReminderScheduler struct{}

func (NoopReminderScheduler) ScheduleSessionReminder(context.Context, models.StudySession) error {
	return nil
}
