// File: database/repository/session/crud.go
package sessionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyplan/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// illegalOperation is returned by standalone servers that cannot run
// multi-document transactions.
const illegalOperation = 20

func stamp(s *models.StudySession, now time.Time) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}

func (r *mongoSessionRepo) Create(ctx context.Context, session *models.StudySession) (*models.StudySession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	stamp(session, time.Now().UTC())
	if _, err := r.coll.InsertOne(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to insert study session: %w", err)
	}
	return session, nil
}

// BulkCreate inserts the sessions in order. On a replica set the insert
// runs in a transaction; a standalone server gets a plain ordered insert.
func (r *mongoSessionRepo) BulkCreate(ctx context.Context, sessions []models.StudySession) ([]models.StudySession, error) {
	if len(sessions) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now().UTC()
	docs := make([]interface{}, len(sessions))
	for i := range sessions {
		stamp(&sessions[i], now)
		docs[i] = sessions[i]
	}

	err := r.insertManyTx(ctx, docs)
	if isIllegalOperation(err) {
		_, err = r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to bulk insert study sessions: %w", err)
	}
	return sessions, nil
}

func (r *mongoSessionRepo) insertManyTx(ctx context.Context, docs []interface{}) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if _, err := r.coll.InsertMany(sc, docs, options.InsertMany().SetOrdered(true)); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

func isIllegalOperation(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == illegalOperation
	}
	return false
}

func (r *mongoSessionRepo) GetByID(ctx context.Context, id string) (*models.StudySession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.StudySession
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch study session: %w", err)
	}
	return &session, nil
}

func (r *mongoSessionRepo) Update(ctx context.Context, session *models.StudySession) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	session.UpdatedAt = time.Now().UTC()
	filter := bson.M{"id": session.ID, "userId": session.UserID}
	res, err := r.coll.ReplaceOne(ctx, filter, session)
	if err != nil {
		return fmt.Errorf("failed to update study session: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoSessionRepo) Delete(ctx context.Context, userID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete study session: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
