package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenService defines operations for the stateless bearer credential.
// The server keeps no record of issued tokens; verification is a pure
// function of the token, the signing secret, and the clock.
type TokenService interface {
	// Generate creates a signed token identifying the given user.
	// Returns the token string or an error if signing fails.
	Generate(ctx context.Context, userID uuid.UUID) (string, error)

	// Validate verifies the provided token string and extracts the claims.
	// Verification is all-or-nothing: a bad signature, malformed payload,
	// or passed expiry each fail the whole token. Returns ErrExpiredToken
	// for expiry and ErrInvalidToken for everything else.
	Validate(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified content of a token: the principal it was
// issued for plus the standard time bounds.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
}
