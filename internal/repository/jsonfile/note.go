package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/msomdec/notekeep/internal/domain"
)

// noteRecord is the on-disk shape of a note.
type noteRecord struct {
	ID      int64  `json:"id"`
	OwnerID string `json:"userId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteRepository implements domain.NoteRepository on top of a Collection
// holding a JSON array of note records.
type NoteRepository struct {
	store domain.Collection
}

// NewNoteRepository creates a NoteRepository over the given collection.
func NewNoteRepository(store domain.Collection) *NoteRepository {
	return &NoteRepository{store: store}
}

func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Note, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var notes []domain.Note
	for _, rec := range records {
		if rec.OwnerID == ownerID {
			notes = append(notes, toNote(rec))
		}
	}
	return notes, nil
}

func (r *NoteRepository) CreateBatch(ctx context.Context, ownerID string, drafts []domain.NoteDraft) ([]domain.Note, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	// IDs continue from the highest ID in the whole store, across owners.
	var maxID int64
	for _, rec := range records {
		if rec.ID > maxID {
			maxID = rec.ID
		}
	}

	created := make([]domain.Note, 0, len(drafts))
	for _, draft := range drafts {
		maxID++
		rec := noteRecord{
			ID:      maxID,
			OwnerID: ownerID,
			Title:   draft.Title,
			Content: draft.Content,
		}
		records = append(records, rec)
		created = append(created, toNote(rec))
	}

	if err := r.save(ctx, records); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *NoteRepository) Update(ctx context.Context, ownerID string, id int64, title, content string) (*domain.Note, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID == id && records[i].OwnerID == ownerID {
			records[i].Title = title
			records[i].Content = content
			if err := r.save(ctx, records); err != nil {
				return nil, err
			}
			note := toNote(records[i])
			return &note, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *NoteRepository) Delete(ctx context.Context, ownerID string, id int64) error {
	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.ID == id && rec.OwnerID == ownerID {
			continue
		}
		kept = append(kept, rec)
	}

	if len(kept) == len(records) {
		return domain.ErrNotFound
	}
	return r.save(ctx, kept)
}

func (r *NoteRepository) load(ctx context.Context) ([]noteRecord, error) {
	data, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []noteRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse notes: %w", err)
	}

	for i, rec := range records {
		if rec.ID < 1 || rec.OwnerID == "" {
			return nil, fmt.Errorf("parse notes: record %d is malformed", i)
		}
	}
	return records, nil
}

func (r *NoteRepository) save(ctx context.Context, records []noteRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err := r.store.SaveAll(ctx, data); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

func toNote(rec noteRecord) domain.Note {
	return domain.Note{
		ID:      rec.ID,
		OwnerID: rec.OwnerID,
		Title:   rec.Title,
		Content: rec.Content,
	}
}
