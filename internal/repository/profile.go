package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskboard/taskboard-go/internal/model"
)

var ErrProfileNotFound = errors.New("user profile not found")

// ProfileRepository handles user profile persistence against the users
// collection.
type ProfileRepository struct {
	col *mongo.Collection
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection("users")}
}

// Insert stores a new profile and sets the generated ObjectID on it.
func (r *ProfileRepository) Insert(ctx context.Context, profile *model.UserProfile) error {
	res, err := r.col.InsertOne(ctx, profile)
	if err != nil {
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		profile.ID = oid
	}
	return nil
}

// FindByEmail retrieves every profile matching the given email address.
// Pairing with credentials is by email convention, so the result is a slice.
func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) ([]model.UserProfile, error) {
	cursor, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}

	var profiles []model.UserProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}

// UpdateName sets the name field of the profile with the given identifier.
func (r *ProfileRepository) UpdateName(ctx context.Context, id, name string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrWrongID
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"name": name}})
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}
