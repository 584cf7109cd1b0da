// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/nshelest/mesto-api/internal/api/shared"
	"github.com/nshelest/mesto-api/internal/service/auth"
)

// bearerPrefix is the required Authorization header scheme.
const bearerPrefix = "Bearer "

// unauthorizedMessage is the single message for every gate rejection.
// Missing header, wrong scheme, malformed token, bad signature and expiry
// are indistinguishable to the client.
const unauthorizedMessage = "authorization required"

// AuthMiddleware provides stateless bearer-token authentication for routes.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate validates the Authorization header and adds the principal's
// user ID to the request context. Requests that fail any check never reach
// the next handler.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)

		claims, err := m.tokenService.Validate(r.Context(), token)
		if err != nil {
			// Expired, malformed and forged tokens all get the same answer.
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the principal's user ID from the request context.
// Returns the ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}
