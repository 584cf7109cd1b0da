package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nshelest/mesto-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret      = "test-secret-that-is-long-enough-for-testing"
	testWrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 7 * 24 * time.Hour
	userID := uuid.New()

	svc := NewTestTokenService(testSecret, tokenLifetime, func() time.Time {
		return fixedTime
	})

	t.Run("generates a verifiable token", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Generate(context.Background(), userID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.Validate(context.Background(), token)
		require.NoError(t, err)

		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, userID.String(), claims.Subject)
		assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
		assert.Equal(t, fixedTime.Add(tokenLifetime).Unix(), claims.ExpiresAt.Unix())
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	userID := uuid.New()

	tests := []struct {
		name      string
		setupFunc func() (TokenService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (TokenService, string) {
				svc := NewTestTokenService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := svc.Generate(context.Background(), userID)
				return svc, token
			},
			wantErr: nil,
		},
		{
			name: "expired token",
			setupFunc: func() (TokenService, string) {
				issueSvc := NewTestTokenService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := issueSvc.Generate(context.Background(), userID)

				// Validate well past the expiry.
				checkSvc := NewTestTokenService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime.Add(tokenLifetime + time.Hour)
				})
				return checkSvc, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "wrong signing secret",
			setupFunc: func() (TokenService, string) {
				issueSvc := NewTestTokenService(testWrongSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := issueSvc.Generate(context.Background(), userID)

				checkSvc := NewTestTokenService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				return checkSvc, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func() (TokenService, string) {
				svc := NewTestTokenService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				return svc, "not-a-jwt"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "empty token",
			setupFunc: func() (TokenService, string) {
				svc := NewTestTokenService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				return svc, ""
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, token := tt.setupFunc()
			claims, err := svc.Validate(context.Background(), token)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, userID, claims.UserID)
				return
			}

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secrets", func(t *testing.T) {
		t.Parallel()

		_, err := NewTokenService(config.AuthConfig{
			JWTSecret:            "too-short",
			TokenLifetimeMinutes: 60,
		})
		require.Error(t, err)
	})

	t.Run("accepts a sufficiently long secret", func(t *testing.T) {
		t.Parallel()

		svc, err := NewTokenService(config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 7 * 24 * 60,
		})
		require.NoError(t, err)
		require.NotNil(t, svc)
	})
}
