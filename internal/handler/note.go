package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/notekeep/internal/domain"
	"github.com/msomdec/notekeep/internal/service"
)

// NoteHandler handles note HTTP requests. Every route is behind RequireAuth;
// the authenticated identity's user ID is the owner for all downstream
// operations.
type NoteHandler struct {
	notes *service.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

type noteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// HandleList returns the caller's notes.
// GET /notes
// Response: [{"id":1,"userId":"...","title":"...","content":"..."}, ...]
func (h *NoteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ident := IdentityFromContext(r.Context())

	notes, err := h.notes.List(r.Context(), ident.UserID)
	if err != nil {
		slog.Error("list notes", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve notes.")
		return
	}

	writeJSON(w, http.StatusOK, toNoteDTOs(notes))
}

// HandleCreate creates one or more notes. The body may be a single note
// object or an array of them; the response is always an array.
// POST /notes
// Response: 201 [{"id":1,...}]
func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ident := IdentityFromContext(r.Context())

	drafts, err := readNoteDrafts(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	created, err := h.notes.Create(r.Context(), ident.UserID, drafts)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Title and content are required.")
			return
		}
		slog.Error("create notes", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create note.")
		return
	}

	writeJSON(w, http.StatusCreated, toNoteDTOs(created))
}

// HandleUpdate replaces a note's title and content.
// PUT /notes/{id}
// Response: 200 {"id":1,...}
func (h *NoteHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ident := IdentityFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found.")
		return
	}

	var req noteInput
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	note, err := h.notes.Update(r.Context(), ident.UserID, id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Title and content are required.")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Note not found.")
			return
		}
		slog.Error("update note", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update note.")
		return
	}

	writeJSON(w, http.StatusOK, toNoteDTO(*note))
}

// HandleDelete removes a note.
// DELETE /notes/{id}
// Response: 204 empty
func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ident := IdentityFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found.")
		return
	}

	if err := h.notes.Delete(r.Context(), ident.UserID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Note not found.")
			return
		}
		slog.Error("delete note", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete note.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// readNoteDrafts decodes a body that is either a single note object or an
// array of note objects.
func readNoteDrafts(body io.Reader) ([]domain.NoteDraft, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var inputs []noteInput
		if err := json.Unmarshal(raw, &inputs); err != nil {
			return nil, err
		}
		drafts := make([]domain.NoteDraft, len(inputs))
		for i, in := range inputs {
			drafts[i] = domain.NoteDraft{Title: in.Title, Content: in.Content}
		}
		return drafts, nil
	}

	var in noteInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}
	return []domain.NoteDraft{{Title: in.Title, Content: in.Content}}, nil
}
