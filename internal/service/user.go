package service

import (
	"context"
	"errors"

	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/repository"
)

// ProfileStore persists user profiles.
type ProfileStore interface {
	Insert(ctx context.Context, profile *model.UserProfile) error
	FindByEmail(ctx context.Context, email string) ([]model.UserProfile, error)
	UpdateName(ctx context.Context, id, name string) error
}

// UserService handles profile business logic.
type UserService struct {
	store ProfileStore
}

// NewUserService creates a new UserService.
func NewUserService(store ProfileStore) *UserService {
	return &UserService{store: store}
}

// Profiles returns the profiles matching a verified email. No match is an
// empty result, not an error.
func (s *UserService) Profiles(ctx context.Context, email string) ([]model.UserProfile, error) {
	profiles, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if profiles == nil {
		profiles = []model.UserProfile{}
	}
	return profiles, nil
}

// UpdateName sets a profile's name, unconditionally.
func (s *UserService) UpdateName(ctx context.Context, id, newName string) error {
	err := s.store.UpdateName(ctx, id, newName)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrWrongID), errors.Is(err, repository.ErrProfileNotFound):
		return ErrWrongID
	default:
		return err
	}
}
