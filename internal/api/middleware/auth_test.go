package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/mocks"
	"github.com/workdeck/workdeck-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	actors := mocks.NewMemoryActorStore()
	actor, err := domain.NewActor("worker", "worker@example.com", "password1234567", domain.RoleEmployee)
	require.NoError(t, err)
	require.NoError(t, actors.Create(context.Background(), actor))

	t.Run("valid token resolves actor", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Claims: &auth.Claims{ActorID: actor.ID}}
		mw := NewAuthMiddleware(jwtService, actors)

		var got *domain.Actor
		handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = GetActor(r)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got)
		assert.Equal(t, actor.ID, got.ID)
		assert.Equal(t, domain.RoleEmployee, got.Role)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		mw := NewAuthMiddleware(&mocks.MockJWTService{}, actors)
		handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be reached")
		}))

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		t.Parallel()

		mw := NewAuthMiddleware(&mocks.MockJWTService{}, actors)
		handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be reached")
		}))

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}
		mw := NewAuthMiddleware(jwtService, actors)
		handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be reached")
		}))

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token for deleted actor", func(t *testing.T) {
		t.Parallel()

		ghostID := domain.Actor{}.ID // zero UUID, not in the store
		jwtService := &mocks.MockJWTService{Claims: &auth.Claims{ActorID: ghostID}}
		mw := NewAuthMiddleware(jwtService, actors)
		handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be reached")
		}))

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer orphan-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
