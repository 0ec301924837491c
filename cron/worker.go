package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"studyplan/config"
	sessionRepo "studyplan/database/repository/session"
	"studyplan/models"
	"studyplan/services/planner"
	"studyplan/services/scheduling"
	"studyplan/services/tasks"
	"studyplan/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// SessionLoader reads the current state of a session at fire time.
type SessionLoader interface {
	GetByID(ctx context.Context, id string) (*models.StudySession, error)
}

// QueueRedisOpt is the asynq connection for the reminder queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReminderWorker runs the async worker in background. The returned
// server must be shut down by the caller.
func InitReminderWorker(sessions SessionLoader, clock utils.Clock) *asynq.Server {
	logger := utils.GetLogger()
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSessionReminder, handleSessionReminder(sessions, clock))

	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Error("Reminder worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Error("Reminder worker gave up; reminders will not be delivered")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleSessionReminder(sessions SessionLoader, clock utils.Clock) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.SessionReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Warn("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("invalid reminder payload: %v: %w", err, asynq.SkipRetry)
		}

		session, err := sessions.GetByID(ctx, p.SessionID)
		if errors.Is(err, sessionRepo.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		// Superseded by a reminder for the new start.
		if !session.ScheduledStart.Equal(p.ScheduledStart) {
			return nil
		}

		status := scheduling.ClassifyStatus(planner.SessionTimesOf(*session), clock.Now())
		if status != scheduling.StatusUpcoming {
			return nil
		}

		logger.Info("Study session starting soon",
			zap.String("sessionId", session.ID),
			zap.String("userId", session.UserID),
			zap.String("title", session.Title),
			zap.Time("scheduledStart", session.ScheduledStart),
		)
		return nil
	}
}
