package domain

import (
	"context"
	"time"
)

// User represents a registered account. Users are immutable after signup;
// no exposed operation updates or deletes them.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create persists a new user, assigning a fresh ID and creation
	// timestamp. Returns ErrDuplicateEmail if the email is taken.
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
