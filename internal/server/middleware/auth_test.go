package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticClaims struct {
	username string
}

func (c *staticClaims) GetUsername() string { return c.username }

// staticValidator accepts exactly one token string.
type staticValidator struct {
	accept   string
	username string
}

func (v *staticValidator) ValidateToken(tokenString string) (UsernameGetter, error) {
	if tokenString != v.accept {
		return nil, errors.New("bad token")
	}
	return &staticClaims{username: v.username}, nil
}

func protected(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var seenUser string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := Username(r)
		require.NoError(t, err)
		seenUser = username
		w.WriteHeader(http.StatusOK)
	})
	validator := &staticValidator{accept: "good-token", username: "admin"}
	return RequireAuth(validator)(handler), &seenUser
}

func TestRequireAuthAcceptsBearerToken(t *testing.T) {
	handler, seenUser := protected(t)

	req := httptest.NewRequest(http.MethodPost, "/api/report", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", *seenUser)
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	handler, _ := protected(t)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"bearer without token", "Bearer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/report", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error": true, "message": "Missing auth token"}`, rec.Body.String())
		})
	}
}

func TestRequireAuthRejectsInvalidToken(t *testing.T) {
	handler, _ := protected(t)

	req := httptest.NewRequest(http.MethodPost, "/api/report", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": true, "message": "Invalid or expired token"}`, rec.Body.String())
}

func TestUsernameOutsideMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := Username(req)
	assert.Error(t, err)
}
