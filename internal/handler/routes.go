package handler

import (
	"net/http"

	"github.com/msomdec/notekeep/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. The signup and
// signin routes are public; every note route runs behind RequireAuth.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, notes *service.NoteService) {
	authHandler := NewAuthHandler(auth)
	noteHandler := NewNoteHandler(notes)

	mux.HandleFunc("POST /auth/signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /auth/signin", authHandler.HandleSignin)

	mux.Handle("GET /notes", RequireAuth(auth, http.HandlerFunc(noteHandler.HandleList)))
	mux.Handle("POST /notes", RequireAuth(auth, http.HandlerFunc(noteHandler.HandleCreate)))
	mux.Handle("PUT /notes/{id}", RequireAuth(auth, http.HandlerFunc(noteHandler.HandleUpdate)))
	mux.Handle("DELETE /notes/{id}", RequireAuth(auth, http.HandlerFunc(noteHandler.HandleDelete)))

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("GET /{$}", HandleHome)
}
