package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account as stored in the users collection.
// The password hash is bson-only and must never reach an outbound payload.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// SignupRequest represents user registration data
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,maxbytes=72"`
	Name     string `json:"name" validate:"omitempty,max=100"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries the issued bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Profile is the outbound shape of a user account, password excluded.
type Profile struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProfile maps a stored user to its outbound representation.
func NewProfile(u *User) *Profile {
	return &Profile{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// UserRepository defines persistence operations for user accounts.
// Lookups return (nil, nil) when no document matches.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	Insert(ctx context.Context, user *User) (primitive.ObjectID, error)
}
