// File: database/repository/session/queries.go
package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"studyplan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindRange returns the user's sessions starting in [from, to), oldest first.
func (r *mongoSessionRepo) FindRange(ctx context.Context, userID string, from, to time.Time) ([]models.StudySession, error) {
	filter := bson.M{
		"userId":         userID,
		"scheduledStart": bson.M{"$gte": from, "$lt": to},
	}
	return r.find(ctx, filter)
}

// FindOverlapping returns sessions whose scheduled interval intersects [from, to).
func (r *mongoSessionRepo) FindOverlapping(ctx context.Context, userID string, from, to time.Time) ([]models.StudySession, error) {
	filter := bson.M{
		"userId":         userID,
		"scheduledStart": bson.M{"$lt": to},
		"scheduledEnd":   bson.M{"$gt": from},
	}
	return r.find(ctx, filter)
}

func (r *mongoSessionRepo) find(ctx context.Context, filter bson.M) ([]models.StudySession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "scheduledStart", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch study sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.StudySession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding study sessions: %w", err)
	}
	return sessions, nil
}
