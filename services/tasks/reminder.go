package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"studyplan/models"

	"github.com/hibiken/asynq"
)

const TypeSessionReminder = "session:reminder"

// reminderRetention keeps finished reminder tasks long enough for the
// task ID to reject duplicates of the same schedule.
const reminderRetention = 24 * time.Hour

// ReminderTaskID identifies one reminder for one scheduled start, so a
// rescheduled session gets a fresh task while duplicates are rejected.
func ReminderTaskID(sessionID string, start time.Time) string {
	return fmt.Sprintf("%s:%s:%d", TypeSessionReminder, sessionID, start.Unix())
}

func NewSessionReminderTask(payload models.SessionReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSessionReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(ReminderTaskID(payload.SessionID, payload.ScheduledStart)),
		asynq.MaxRetry(3),
		asynq.Retention(reminderRetention),
	}

	return task, opts, nil
}
