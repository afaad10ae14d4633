package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/notekeep/internal/domain"
	"github.com/msomdec/notekeep/internal/service"
)

// AuthHandler handles authentication-related HTTP requests. Neither endpoint
// passes through the auth gate.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleSignup processes a JSON signup request.
// POST /auth/signup
// Request:  {"email":"...","password":"...","confirmPassword":"..."}
// Response: {"message":"...","token":"...","user":{"id":"...","email":"..."}}
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		writeError(w, http.StatusBadRequest, "Email, password, and confirmPassword are required.")
		return
	}
	if req.Password != req.ConfirmPassword {
		writeError(w, http.StatusBadRequest, "Passwords do not match.")
		return
	}
	if len(req.Password) < 4 {
		writeError(w, http.StatusBadRequest, "Password must be at least 4 characters long.")
		return
	}

	user, token, err := h.auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "Email already registered.")
			return
		}
		slog.Error("signup", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to register user.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully.",
		"token":   token,
		"user":    toUserDTO(user),
	})
}

// HandleSignin processes a JSON signin request.
// POST /auth/signin
// Request:  {"email":"...","password":"..."}
// Response: {"message":"...","token":"...","user":{"id":"...","email":"..."}}
func (h *AuthHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		slog.Error("signin", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to log in.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User logged in successfully.",
		"token":   token,
		"user":    toUserDTO(user),
	})
}
