// Package mocks provides hand-rolled test doubles for the service and
// store interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/nshelest/mesto-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateFn allows test cases to mock the Validate behavior
	ValidateFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	ValidateErr error
	Claims      *auth.Claims
}

// Generate implements the auth.TokenService interface
func (m *MockTokenService) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, userID)
	}
	return m.Token, m.Err
}

// Validate implements the auth.TokenService interface
func (m *MockTokenService) Validate(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateFn != nil {
		return m.ValidateFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
