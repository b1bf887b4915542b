package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/workdeck/workdeck-api/internal/api/shared"
	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/service/auth"
	"github.com/workdeck/workdeck-api/internal/service/workflow"
	"github.com/workdeck/workdeck-api/internal/store"
)

// AuthHandler handles registration, login and token refresh.
type AuthHandler struct {
	actors           store.ActorStore
	actorService     *workflow.ActorService
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	tokenLifetime    time.Duration
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	actors store.ActorStore,
	actorService *workflow.ActorService,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	tokenLifetime time.Duration,
) *AuthHandler {
	return &AuthHandler{
		actors:           actors,
		actorService:     actorService,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		tokenLifetime:    tokenLifetime,
	}
}

// Register handles the /auth/register endpoint. Registration is open; the
// role defaults to employee when absent.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	actor, err := h.actorService.Register(
		r.Context(),
		req.Username,
		req.Email,
		req.Password,
		domain.Role(req.Role),
	)
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Username already exists")
			return
		}
		if domain.IsValidationError(err) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
			return
		}
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	h.respondWithTokens(w, r, actor, http.StatusCreated)
}

// Login handles the /auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	actor, err := h.actors.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrActorNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		HandleAPIError(w, r, err, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(actor.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.respondWithTokens(w, r, actor, http.StatusOK)
}

// Refresh handles the /auth/refresh endpoint. A valid refresh token yields
// a brand-new token pair.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	// Account may have been removed since the token was issued.
	if _, err := h.actors.GetByID(r.Context(), claims.ActorID); err != nil {
		if errors.Is(err, store.ErrActorNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid refresh token")
			return
		}
		HandleAPIError(w, r, err, "Failed to refresh token")
		return
	}

	accessToken, err := h.jwtService.GenerateToken(r.Context(), claims.ActorID)
	if err != nil {
		slog.Error("failed to generate access token", "error", err, "actor_id", claims.ActorID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), claims.ActorID)
	if err != nil {
		slog.Error("failed to generate refresh token", "error", err, "actor_id", claims.ActorID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().UTC().Add(h.tokenLifetime).Format(time.RFC3339),
	})
}

func (h *AuthHandler) respondWithTokens(
	w http.ResponseWriter,
	r *http.Request,
	actor *domain.Actor,
	status int,
) {
	accessToken, err := h.jwtService.GenerateToken(r.Context(), actor.ID)
	if err != nil {
		slog.Error("failed to generate access token", "error", err, "actor_id", actor.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), actor.ID)
	if err != nil {
		slog.Error("failed to generate refresh token", "error", err, "actor_id", actor.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, status, AuthResponse{
		ActorID:      actor.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().UTC().Add(h.tokenLifetime).Format(time.RFC3339),
	})
}
