package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskboard/taskboard-go/internal/model"
)

var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository handles login credential persistence against the
// login collection.
type CredentialRepository struct {
	col *mongo.Collection
}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{col: db.Collection("login")}
}

// Insert stores a new credential and sets the generated ObjectID on it.
func (r *CredentialRepository) Insert(ctx context.Context, cred *model.Credential) error {
	res, err := r.col.InsertOne(ctx, cred)
	if err != nil {
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		cred.ID = oid
	}
	return nil
}

// FindByEmail retrieves the credential for the given email address.
func (r *CredentialRepository) FindByEmail(ctx context.Context, email string) (*model.Credential, error) {
	cred := &model.Credential{}
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(cred)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCredentialNotFound
		}
		return nil, err
	}

	return cred, nil
}

// Delete removes the credential with the given identifier. Used to undo the
// credential write when the paired profile write fails during signup.
func (r *CredentialRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrWrongID
	}

	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
