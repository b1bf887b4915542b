package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workdeck/workdeck-api/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:                   "0123456789abcdef0123456789abcdef",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 10080,
	}
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.JWTSecret = "short"
	_, err := NewJWTService(cfg)
	require.Error(t, err)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	actorID := uuid.New()
	token, err := svc.GenerateToken(context.Background(), actorID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, actorID, claims.ActorID)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, actorID.String(), claims.Subject)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	actorID := uuid.New()
	token, err := svc.GenerateRefreshToken(context.Background(), actorID)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, actorID, claims.ActorID)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestTokenTypeMismatch(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	access, err := svc.GenerateToken(context.Background(), uuid.New())
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(context.Background(), uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(context.Background(), access)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = svc.ValidateToken(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestExpiredToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	impl := svc.(*hmacJWTService)
	issued := time.Now().Add(-24 * time.Hour)
	impl.timeFunc = func() time.Time { return issued }

	token, err := svc.GenerateToken(context.Background(), uuid.New())
	require.NoError(t, err)

	// Move the clock past lifetime plus skew.
	impl.timeFunc = time.Now
	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestGarbageToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedSignature(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "ffffffffffffffffffffffffffffffff"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateToken(context.Background(), uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBcryptRoundTrip(t *testing.T) {
	t.Parallel()

	v := NewBcryptVerifier(bcryptMinCostForTests)
	hash, err := v.Hash("a-long-enough-password")
	require.NoError(t, err)

	assert.NoError(t, v.Compare(hash, "a-long-enough-password"))
	assert.Error(t, v.Compare(hash, "a-wrong-password-entirely"))
}

// bcrypt.MinCost keeps the hashing test fast.
const bcryptMinCostForTests = 4
