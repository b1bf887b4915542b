package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/workdeck/workdeck-api/internal/api/shared"
	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/redact"
	"github.com/workdeck/workdeck-api/internal/service/auth"
	"github.com/workdeck/workdeck-api/internal/store"
)

// AuthMiddleware provides JWT authentication for routes. Tokens carry only
// the actor ID; the actor record, including its current role, is loaded
// fresh from the store on every request so role changes take effect
// immediately.
type AuthMiddleware struct {
	jwtService auth.JWTService
	actors     store.ActorStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, actors store.ActorStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		actors:     actors,
	}
}

// Authenticate validates the bearer token from the Authorization header,
// resolves the acting actor, and adds it to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrWrongTokenType):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		actor, err := m.actors.GetByID(r.Context(), claims.ActorID)
		if err != nil {
			if errors.Is(err, store.ErrActorNotFound) {
				// Token outlived the account.
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
				return
			}
			slog.Error("failed to load actor for token", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.ActorContextKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActor extracts the authenticated actor from the request context.
// Returns the actor and a boolean indicating if it was found.
func GetActor(r *http.Request) (*domain.Actor, bool) {
	actor, ok := r.Context().Value(shared.ActorContextKey).(*domain.Actor)
	return actor, ok
}
