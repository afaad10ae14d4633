package handler

import "github.com/msomdec/notekeep/internal/domain"

// UserDTO is the JSON representation of a user as returned by the auth
// endpoints. The password hash never leaves the server.
type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Email: u.Email,
	}
}

// NoteDTO is the JSON representation of a note.
type NoteDTO struct {
	ID      int64  `json:"id"`
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func toNoteDTO(n domain.Note) NoteDTO {
	return NoteDTO{
		ID:      n.ID,
		UserID:  n.OwnerID,
		Title:   n.Title,
		Content: n.Content,
	}
}

func toNoteDTOs(notes []domain.Note) []NoteDTO {
	dtos := make([]NoteDTO, len(notes))
	for i, n := range notes {
		dtos[i] = toNoteDTO(n)
	}
	return dtos
}
