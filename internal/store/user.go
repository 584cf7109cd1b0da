package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/nshelest/mesto-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists if the email is already taken.
	// Returns ErrInvalidEntity-wrapped validation errors if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// The returned user includes the password hash for credential checks.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List retrieves all users, oldest first.
	List(ctx context.Context) ([]*domain.User, error)

	// UpdateProfile modifies a user's name and about fields and returns the
	// updated user. Returns ErrUserNotFound if the user does not exist and
	// ErrInvalidEntity-wrapped validation errors if the new values violate
	// their constraints.
	UpdateProfile(ctx context.Context, id uuid.UUID, name, about string) (*domain.User, error)

	// UpdateAvatar modifies a user's avatar URL and returns the updated user.
	// Returns ErrUserNotFound if the user does not exist and
	// ErrInvalidEntity-wrapped validation errors if the URL is invalid.
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) (*domain.User, error)
}
