package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/taskboard/taskboard-go/internal/crypto"
	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrNameRequired       = errors.New("name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already registered")
)

// CredentialStore persists login credentials.
type CredentialStore interface {
	Insert(ctx context.Context, cred *model.Credential) error
	FindByEmail(ctx context.Context, email string) (*model.Credential, error)
	Delete(ctx context.Context, id string) error
}

// AuthService handles signup and login business logic.
type AuthService struct {
	creds     CredentialStore
	profiles  ProfileStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(creds CredentialStore, profiles ProfileStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		creds:     creds,
		profiles:  profiles,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Signup registers a new user: one credential record and one profile record,
// paired by email. The two writes are not transactional; if the profile
// write fails the credential is removed again so a user can never log in
// without a profile.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (*model.UserProfile, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.Email == "" {
		return nil, ErrEmailRequired
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}

	_, err := s.creds.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	cred := &model.Credential{
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.creds.Insert(ctx, cred); err != nil {
		return nil, err
	}

	profile := &model.UserProfile{
		Email: req.Email,
		Name:  req.Name,
	}
	if err := s.profiles.Insert(ctx, profile); err != nil {
		if delErr := s.creds.Delete(ctx, cred.ID.Hex()); delErr != nil {
			slog.Warn("could not undo credential write after profile insert failure",
				"email", req.Email, "error", delErr)
		}
		return nil, err
	}

	return profile, nil
}

// Login verifies a password against the stored credential and issues a
// bearer token carrying the email. Unknown email and wrong password are the
// same expected outcome, not a fault.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	cred, err := s.creds.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	match, err := crypto.VerifyPassword(req.Password, cred.PasswordHash)
	if err != nil {
		return "", err
	}
	if !match {
		return "", ErrInvalidCredentials
	}

	return crypto.GenerateToken(cred.Email, s.jwtSecret, s.jwtExpiry)
}
