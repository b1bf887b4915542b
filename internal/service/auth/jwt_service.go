// Package auth provides token issuing and password hashing for the API.
//
// The rest of the application treats identity as a collaborator: middleware
// validates a token, resolves the actor from the store and hands the core an
// *domain.Actor. The token itself carries only the actor ID; the role is
// always re-resolved per request, so a role change takes effect immediately.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the actor.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, actorID uuid.UUID) (string, error)

	// ValidateToken validates the provided access token string and extracts
	// the claims. Returns an error if validation fails (expired, invalid
	// signature, wrong token type, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed JWT refresh token for the actor.
	// Refresh tokens have a longer lifetime and are used to obtain new
	// access tokens.
	GenerateRefreshToken(ctx context.Context, actorID uuid.UUID) (string, error)

	// ValidateRefreshToken validates the provided refresh token string and
	// extracts the claims.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// ActorID is the unique identifier of the actor the token was issued for.
	ActorID uuid.UUID `json:"uid,omitempty"`

	// TokenType indicates the purpose of the token ("access" or "refresh").
	// Used to prevent token misuse across different contexts.
	TokenType string `json:"type,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
