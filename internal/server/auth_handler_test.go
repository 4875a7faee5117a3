package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hiring-console/internal/config"
	"github.com/jonathan/hiring-console/internal/types"
)

func newTestAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-for-auth-handler-tests")

	service := newTestRecruiterService(t, newFakeAuthStore())
	jwtConfig, err := config.NewJWTConfig()
	require.NoError(t, err)

	return NewAuthHandler(service, NewJWTService(jwtConfig))
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	handler := newTestAuthHandler(t)

	w := postJSON(t, handler.Register, "/auth/register",
		`{"name": "Dana Ellis", "email": "dana@example.com", "password": "password123"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Recruiter)
	assert.Equal(t, "dana@example.com", resp.Recruiter.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Register_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name": `},
		{"missing name", `{"email": "dana@example.com", "password": "password123"}`},
		{"bad email", `{"name": "Dana", "email": "not-an-email", "password": "password123"}`},
		{"short password", `{"name": "Dana", "email": "dana@example.com", "password": "short"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestAuthHandler(t)
			w := postJSON(t, handler.Register, "/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	handler := newTestAuthHandler(t)

	w := postJSON(t, handler.Register, "/auth/register",
		`{"name": "Dana", "email": "dana@example.com", "password": "password123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("correct credentials", func(t *testing.T) {
		w := postJSON(t, handler.Login, "/auth/login",
			`{"email": "dana@example.com", "password": "password123"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp types.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postJSON(t, handler.Login, "/auth/login",
			`{"email": "dana@example.com", "password": "nope-nope-nope"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		w := postJSON(t, handler.Login, "/auth/login",
			`{"email": "dana@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_TokenRoundTrip(t *testing.T) {
	handler := newTestAuthHandler(t)

	w := postJSON(t, handler.Register, "/auth/register",
		`{"name": "Dana", "email": "dana@example.com", "password": "password123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := handler.jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Recruiter.ID, claims.RecruiterID)
}
