package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/notekeep/internal/domain"
)

// userRecord is the on-disk shape of a user. Only the bcrypt hash is ever
// persisted, never the plaintext password.
type userRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserRepository implements domain.UserRepository on top of a Collection
// holding a JSON array of user records.
type UserRepository struct {
	store domain.Collection
}

// NewUserRepository creates a UserRepository over the given collection.
func NewUserRepository(store domain.Collection) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	for _, rec := range records {
		if rec.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}

	now := time.Now().UTC()
	rec := userRecord{
		ID:           uuid.NewString(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    now,
	}
	records = append(records, rec)

	if err := r.save(ctx, records); err != nil {
		return err
	}

	user.ID = rec.ID
	user.CreatedAt = now
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	// Emails match exactly as stored; lookups are case-sensitive.
	for _, rec := range records {
		if rec.Email == email {
			return toUser(rec), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.ID == id {
			return toUser(rec), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) load(ctx context.Context) ([]userRecord, error) {
	data, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []userRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse users: %w", err)
	}

	for i, rec := range records {
		if rec.ID == "" || rec.Email == "" || rec.PasswordHash == "" {
			return nil, fmt.Errorf("parse users: record %d is malformed", i)
		}
	}
	return records, nil
}

func (r *UserRepository) save(ctx context.Context, records []userRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := r.store.SaveAll(ctx, data); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

func toUser(rec userRecord) *domain.User {
	return &domain.User{
		ID:           rec.ID,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
	}
}
