package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/travelpal/travelpal/internal/metrics"
	"github.com/travelpal/travelpal/internal/models"
)

const usersCollection = "users"

// UserStore persists user records.
type UserStore struct {
	coll    *mongo.Collection
	metrics *metrics.Collector
}

// Insert stores a new user. Returns ErrDuplicate if username, email or
// phone number is already taken.
func (s *UserStore) Insert(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now().UTC()

	start := time.Now()
	res, err := s.coll.InsertOne(ctx, user)
	s.record(start, err)
	if err != nil {
		return wrapWriteError(err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = id
	}
	return nil
}

// FindByUsername returns the user with the given username, or ErrNotFound.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

// FindByEmail returns the user with the given email, or ErrNotFound.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

// FindByPhone returns the user with the given phone number, or ErrNotFound.
func (s *UserStore) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	return s.findOne(ctx, bson.D{{Key: "phoneNumber", Value: phone}})
}

func (s *UserStore) findOne(ctx context.Context, filter bson.D) (*models.User, error) {
	var user models.User
	start := time.Now()
	err := s.coll.FindOne(ctx, filter).Decode(&user)
	s.record(start, err)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// record tracks query timing. Zero-result lookups and duplicate-key
// rejections are expected outcomes, not query failures.
func (s *UserStore) record(start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	failed := err != nil &&
		!errors.Is(err, mongo.ErrNoDocuments) &&
		!mongo.IsDuplicateKeyError(err)
	s.metrics.RecordTiming(metrics.OpDBQuery, time.Since(start), failed)
}
