// File: database/repository/session/interface.go
package sessionRepo

import (
	"context"
	"errors"
	"time"

	"studyplan/database"
	"studyplan/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no session matches the given id.
var ErrNotFound = errors.New("study session not found")

type SessionRepository interface {
	Create(ctx context.Context, session *models.StudySession) (*models.StudySession, error)
	BulkCreate(ctx context.Context, sessions []models.StudySession) ([]models.StudySession, error)
	GetByID(ctx context.Context, id string) (*models.StudySession, error)
	FindRange(ctx context.Context, userID string, from, to time.Time) ([]models.StudySession, error)
	FindOverlapping(ctx context.Context, userID string, from, to time.Time) ([]models.StudySession, error)
	Update(ctx context.Context, session *models.StudySession) error
	Delete(ctx context.Context, userID, id string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo constructs a new MongoDB SessionRepository.
func NewMongoSessionRepo() SessionRepository {
	return &mongoSessionRepo{
		coll: database.DB().Collection("study_sessions"),
	}
}
