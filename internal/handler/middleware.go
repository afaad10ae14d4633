package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/cors"
	"github.com/msomdec/notekeep/internal/service"
)

type contextKey string

const identityContextKey contextKey = "identity"

// Identity is the authenticated caller as asserted by a verified token.
type Identity struct {
	UserID string
	Email  string
}

// IdentityFromContext extracts the authenticated identity from the request
// context. Returns nil if the request did not pass through RequireAuth.
func IdentityFromContext(ctx context.Context) *Identity {
	ident, _ := ctx.Value(identityContextKey).(*Identity)
	return ident
}

// RequireAuth is middleware that guards owner-scoped routes. It reads the
// Bearer token from the Authorization header, validates it, and injects the
// embedded identity into the request context. A missing token yields 401, an
// invalid or expired one 403. No database lookup happens here: the token is
// the sole source of identity.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "Authentication required.")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			writeError(w, http.StatusForbidden, "Invalid or expired token.")
			return
		}

		ident := &Identity{UserID: claims.UserID, Email: claims.Email}
		ctx := context.WithValue(r.Context(), identityContextKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CORS builds the middleware that lets browser clients on the configured
// origins call the API. corsOrigin is a comma-separated list of origins.
func CORS(corsOrigin string) func(http.Handler) http.Handler {
	var origins []string
	for _, p := range strings.Split(corsOrigin, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	})
}
