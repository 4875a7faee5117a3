package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClaims struct {
	id uuid.UUID
}

func (c *fakeClaims) GetRecruiterID() uuid.UUID { return c.id }

type fakeValidator struct {
	id    uuid.UUID
	valid bool
}

func (v *fakeValidator) ValidateToken(tokenString string) (RecruiterIDGetter, error) {
	if !v.valid {
		return nil, fmt.Errorf("invalid token")
	}
	return &fakeClaims{id: v.id}, nil
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	recruiterID := uuid.New()
	validator := &fakeValidator{id: recruiterID, valid: true}

	var gotID uuid.UUID
	handler := AuthMiddleware(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetRecruiterID(r)
		require.NoError(t, err)
		gotID = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, recruiterID, gotID)
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	validator := &fakeValidator{id: uuid.New(), valid: true}
	handler := AuthMiddleware(validator)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "bearer some-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		valid  bool
	}{
		{"missing header", "", true},
		{"not bearer", "Basic abc123", true},
		{"empty token", "Bearer ", true},
		{"extra parts", "Bearer one two", true},
		{"invalid token", "Bearer bad-token", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := &fakeValidator{valid: tt.valid}
			handler := AuthMiddleware(validator)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				t.Error("handler should not be reached")
			}))

			req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestGetRecruiterID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	_, err := GetRecruiterID(req)
	assert.Error(t, err)
}

func TestWithRecruiterID(t *testing.T) {
	recruiterID := uuid.New()
	req := WithRecruiterID(httptest.NewRequest(http.MethodGet, "/jobs", nil), recruiterID)

	got, err := GetRecruiterID(req)
	require.NoError(t, err)
	assert.Equal(t, recruiterID, got)
}
