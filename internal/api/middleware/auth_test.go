package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/nshelest/mesto-api/internal/mocks"
	"github.com/nshelest/mesto-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectedUserID uuid.UUID
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: userID},
			expectedStatus: http.StatusOK,
			expectedUserID: userID,
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no scheme at all",
			authHeader:     "just-a-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokenService := &mocks.MockTokenService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}

			authMiddleware := NewAuthMiddleware(tokenService)

			var handlerCalled bool
			var capturedUserID uuid.UUID
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				if id, ok := GetUserID(r); ok {
					capturedUserID = id
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			authMiddleware.Authenticate(nextHandler).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.True(t, handlerCalled)
				assert.Equal(t, tt.expectedUserID, capturedUserID)
			} else {
				// Rejected requests never reach the route handler.
				assert.False(t, handlerCalled)
			}
		})
	}
}

// Expired and forged tokens must be indistinguishable to the client: same
// status, same body.
func TestAuthMiddleware_RejectionsAreUniform(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	bodyFor := func(validateErr error, header string) map[string]string {
		authMiddleware := NewAuthMiddleware(&mocks.MockTokenService{ValidateErr: validateErr})
		req := httptest.NewRequest("GET", "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		authMiddleware.Authenticate(next).ServeHTTP(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		return body
	}

	expired := bodyFor(auth.ErrExpiredToken, "Bearer some-token")
	invalid := bodyFor(auth.ErrInvalidToken, "Bearer some-token")
	missing := bodyFor(nil, "")

	assert.Equal(t, expired, invalid)
	assert.Equal(t, expired, missing)
}
