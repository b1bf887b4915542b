package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/mocks"
	"github.com/workdeck/workdeck-api/internal/service/workflow"
)

func newAuthFixture(t *testing.T, verifierSucceeds bool) (*AuthHandler, *mocks.MemoryActorStore) {
	t.Helper()
	actors := mocks.NewMemoryActorStore()
	actorService := workflow.NewActorService(actors, mocks.PlainHasher{}, slog.Default())
	jwtService := &mocks.MockJWTService{Token: "test-token", RefreshToken: "test-refresh"}
	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: verifierSucceeds}
	return NewAuthHandler(actors, actorService, jwtService, verifier, time.Hour), actors
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestAuthAPI_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"username": "worker",
				"email":    "worker@example.com",
				"password": "password1234567",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "valid manager registration",
			payload: map[string]interface{}{
				"username": "boss",
				"email":    "boss@example.com",
				"password": "password1234567",
				"role":     "manager",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "invalid role",
			payload: map[string]interface{}{
				"username": "worker",
				"email":    "worker@example.com",
				"password": "password1234567",
				"role":     "admin",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"username": "worker",
				"email":    "not-an-email",
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"username": "worker",
				"email":    "worker@example.com",
				"password": "short",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing username",
			payload: map[string]interface{}{
				"email":    "worker@example.com",
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler, actors := newAuthFixture(t, true)
			w := postJSON(t, handler.Register, "/api/auth/register", tt.payload)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantStatus == http.StatusCreated {
				var resp AuthResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "test-token", resp.AccessToken)
				assert.Equal(t, "test-refresh", resp.RefreshToken)

				stored, err := actors.GetByID(context.Background(), resp.ActorID)
				require.NoError(t, err)
				assert.Empty(t, stored.Password)
				assert.NotEmpty(t, stored.HashedPassword)
			}
		})
	}
}

func TestAuthAPI_Register_DefaultRoleIsEmployee(t *testing.T) {
	t.Parallel()

	handler, actors := newAuthFixture(t, true)
	w := postJSON(t, handler.Register, "/api/auth/register", map[string]interface{}{
		"username": "worker",
		"email":    "worker@example.com",
		"password": "password1234567",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	stored, err := actors.GetByUsername(context.Background(), "worker")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployee, stored.Role)
}

func TestAuthAPI_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()

	handler, _ := newAuthFixture(t, true)
	payload := map[string]interface{}{
		"username": "worker",
		"email":    "worker@example.com",
		"password": "password1234567",
	}

	w := postJSON(t, handler.Register, "/api/auth/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, handler.Register, "/api/auth/register", payload)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthAPI_Login(t *testing.T) {
	t.Parallel()

	handler, _ := newAuthFixture(t, true)
	register := postJSON(t, handler.Register, "/api/auth/register", map[string]interface{}{
		"username": "worker",
		"email":    "worker@example.com",
		"password": "password1234567",
	})
	require.Equal(t, http.StatusCreated, register.Code)

	w := postJSON(t, handler.Login, "/api/auth/login", map[string]interface{}{
		"username": "worker",
		"password": "password1234567",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "test-token", resp.AccessToken)
}

func TestAuthAPI_Login_BadPassword(t *testing.T) {
	t.Parallel()

	handler, _ := newAuthFixture(t, false)
	register := postJSON(t, handler.Register, "/api/auth/register", map[string]interface{}{
		"username": "worker",
		"email":    "worker@example.com",
		"password": "password1234567",
	})
	require.Equal(t, http.StatusCreated, register.Code)

	w := postJSON(t, handler.Login, "/api/auth/login", map[string]interface{}{
		"username": "worker",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthAPI_Login_UnknownUser(t *testing.T) {
	t.Parallel()

	handler, _ := newAuthFixture(t, true)
	w := postJSON(t, handler.Login, "/api/auth/login", map[string]interface{}{
		"username": "ghost",
		"password": "password1234567",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
