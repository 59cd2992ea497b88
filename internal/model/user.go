package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserProfile is the public-facing user record, kept separate from the
// login credential and paired with it only by email.
type UserProfile struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name" json:"name"`
}

// Credential stores a user's email and password hash. The hash never
// leaves the server.
type Credential struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the bearer token issued on a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateNameRequest represents a profile name change request.
type UpdateNameRequest struct {
	ID      string `json:"id"`
	NewName string `json:"newName"`
}
