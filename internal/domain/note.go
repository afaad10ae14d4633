package domain

import "context"

// Note is a text note owned by a single user. IDs are integers that grow
// monotonically across the whole store, not per owner.
type Note struct {
	ID      int64
	OwnerID string
	Title   string
	Content string
}

// NoteDraft is the caller-supplied part of a new note.
type NoteDraft struct {
	Title   string
	Content string
}

// NoteRepository defines persistence operations for notes. Every method is
// owner-scoped: a note belonging to a different owner behaves as if it does
// not exist.
type NoteRepository interface {
	// ListByOwner returns the owner's notes in insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]Note, error)
	// CreateBatch appends the drafts in submission order, assigning each a
	// fresh ID of current-maximum-plus-one. The whole batch is persisted in
	// a single write.
	CreateBatch(ctx context.Context, ownerID string, drafts []NoteDraft) ([]Note, error)
	// Update replaces title and content in place. Returns ErrNotFound if no
	// note with that ID belongs to the owner.
	Update(ctx context.Context, ownerID string, id int64, title, content string) (*Note, error)
	// Delete removes exactly one note. Returns ErrNotFound if no note with
	// that ID belongs to the owner.
	Delete(ctx context.Context, ownerID string, id int64) error
}
