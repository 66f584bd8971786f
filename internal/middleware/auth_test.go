package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jamaalx/transfabilog-sub001/internal/ctxkeys"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func okHandler(t *testing.T, wantUserID, wantRole string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantUserID, ctxkeys.GetUserID(r.Context()))
		assert.Equal(t, wantRole, ctxkeys.GetUserRole(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"userId": "u1",
		"role":   "dispatcher",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/drivers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	Auth(testSecret)(okHandler(t, "u1", "dispatcher")).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRejections(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-token"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", jwt.MapClaims{
			"userId": "u1", "role": "viewer", "exp": time.Now().Add(time.Hour).Unix(),
		})},
		{"expired token", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"userId": "u1", "role": "viewer", "exp": time.Now().Add(-time.Hour).Unix(),
		})},
		{"missing user id", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"role": "viewer", "exp": time.Now().Add(time.Hour).Unix(),
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/drivers", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(testSecret)(next).ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestRequireMinRole(t *testing.T) {
	tests := []struct {
		role     string
		minRole  string
		wantCode int
	}{
		{"viewer", "dispatcher", http.StatusForbidden},
		{"dispatcher", "dispatcher", http.StatusOK},
		{"admin", "dispatcher", http.StatusOK},
		{"super_admin", "admin", http.StatusOK},
		{"dispatcher", "admin", http.StatusForbidden},
		{"", "viewer", http.StatusForbidden}, // unknown role has no level
	}
	for _, tt := range tests {
		t.Run(tt.role+" vs "+tt.minRole, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodDelete, "/api/drivers/d1", nil)
			ctx := context.WithValue(req.Context(), ctxkeys.UserRole, tt.role)
			rec := httptest.NewRecorder()

			RequireMinRole(tt.minRole)(next).ServeHTTP(rec, req.WithContext(ctx))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
