package service

import (
	"context"
	"fmt"

	"github.com/msomdec/notekeep/internal/domain"
)

// NoteService handles owner-scoped note CRUD with validation.
type NoteService struct {
	notes domain.NoteRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(notes domain.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

// List returns the owner's notes in insertion order.
func (s *NoteService) List(ctx context.Context, ownerID string) ([]domain.Note, error) {
	notes, err := s.notes.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Create validates and persists a batch of new notes. If any draft is
// invalid the whole batch is rejected and nothing is inserted.
func (s *NoteService) Create(ctx context.Context, ownerID string, drafts []domain.NoteDraft) ([]domain.Note, error) {
	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: at least one note is required", domain.ErrInvalidInput)
	}
	for _, draft := range drafts {
		if draft.Title == "" || draft.Content == "" {
			return nil, fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
		}
	}

	created, err := s.notes.CreateBatch(ctx, ownerID, drafts)
	if err != nil {
		return nil, fmt.Errorf("create notes: %w", err)
	}
	return created, nil
}

// Update replaces a note's title and content. Returns domain.ErrNotFound if
// the note does not exist or belongs to a different owner.
func (s *NoteService) Update(ctx context.Context, ownerID string, id int64, title, content string) (*domain.Note, error) {
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
	}

	note, err := s.notes.Update(ctx, ownerID, id, title, content)
	if err != nil {
		return nil, err
	}
	return note, nil
}

// Delete removes a note. Returns domain.ErrNotFound if the note does not
// exist or belongs to a different owner.
func (s *NoteService) Delete(ctx context.Context, ownerID string, id int64) error {
	return s.notes.Delete(ctx, ownerID, id)
}
