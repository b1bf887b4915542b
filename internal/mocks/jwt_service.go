package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token        string
	RefreshToken string
	Err          error
	ValidateErr  error
	Claims       *auth.Claims
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the auth.JWTService interface.
func (m *MockJWTService) GenerateToken(_ context.Context, _ uuid.UUID) (string, error) {
	return m.Token, m.Err
}

// ValidateToken implements the auth.JWTService interface.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// GenerateRefreshToken implements the auth.JWTService interface.
func (m *MockJWTService) GenerateRefreshToken(_ context.Context, _ uuid.UUID) (string, error) {
	return m.RefreshToken, m.Err
}

// ValidateRefreshToken implements the auth.JWTService interface.
func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
