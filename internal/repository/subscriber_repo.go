package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cgabhane/author-website/internal/model"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateEmail is returned by Create when the email is already stored
var ErrDuplicateEmail = errors.New("email already exists")

// SubscriberRepo stores newsletter subscribers, unique by email
type SubscriberRepo interface {
	Create(ctx context.Context, sub *model.Subscriber) error
	GetByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	List(ctx context.Context) ([]*model.Subscriber, error)
	Count(ctx context.Context) (int64, error)
}

type subscriberRepo struct {
	collection *mongo.Collection
}

// NewSubscriberRepo creates a MongoDB-backed subscriber repository.
// Uniqueness relies on the index created by EnsureIndexes.
func NewSubscriberRepo(db *mongo.Database) SubscriberRepo {
	return &subscriberRepo{
		collection: db.Collection(SubscribersCollection),
	}
}

func (r *subscriberRepo) Create(ctx context.Context, sub *model.Subscriber) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.SubscribedAt.IsZero() {
		sub.SubscribedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, sub)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *subscriberRepo) GetByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	var sub model.Subscriber
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriberRepo) List(ctx context.Context) ([]*model.Subscriber, error) {
	opts := options.Find().SetSort(bson.D{{Key: "subscribedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []*model.Subscriber{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriberRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
