package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

const sessionsCollection = "sessions"

// SessionRepository stores sessions in MongoDB. A TTL index on expires_at
// lets the server purge old records; reads also filter on expiry because the
// TTL monitor only runs periodically.
type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionsCollection)}
}

type mongoSession struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	UserName  string    `bson:"user_name"`
	UserEmail string    `bson:"user_email"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSession{
		ID:        s.ID,
		UserID:    s.User.ID,
		UserName:  s.User.Name,
		UserEmail: s.User.Email,
		CreatedAt: s.CreatedAt.UTC(),
		ExpiresAt: s.ExpiresAt.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string, now time.Time) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"_id":        id,
		"expires_at": bson.M{"$gt": now.UTC()},
	}

	var ms mongoSession
	if err := r.coll.FindOne(ctx, filter).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoActiveSession
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &domain.Session{
		ID: ms.ID,
		User: domain.SessionUser{
			ID:    ms.UserID,
			Name:  ms.UserName,
			Email: ms.UserEmail,
		},
		CreatedAt: ms.CreatedAt.UTC(),
		ExpiresAt: ms.ExpiresAt.UTC(),
	}, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// EnsureIndexes creates the expiry TTL index and the per-user lookup index.
func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0).SetName("expires_at_ttl"),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("sessions indexes: %w", err)
	}
	return nil
}
