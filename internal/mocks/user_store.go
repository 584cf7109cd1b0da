package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/nshelest/mesto-api/internal/domain"
	"github.com/nshelest/mesto-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	ListFn          func(ctx context.Context) ([]*domain.User, error)
	UpdateProfileFn func(ctx context.Context, id uuid.UUID, name, about string) (*domain.User, error)
	UpdateAvatarFn  func(ctx context.Context, id uuid.UUID, avatarURL string) (*domain.User, error)

	// Data for the default map-backed implementation, keyed by email.
	Users       map[string]*domain.User
	CreateError error
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if m.CreateError != nil {
		return m.CreateError
	}
	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}
	m.Users[user.Email] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	users := []*domain.User{}
	for _, user := range m.Users {
		users = append(users, user)
	}
	return users, nil
}

// UpdateProfile implements the UserStore interface
func (m *MockUserStore) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	name, about string,
) (*domain.User, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, id, name, about)
	}
	user, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateProfile(name, about); err != nil {
		return nil, store.ErrInvalidEntity
	}
	user.Name = name
	user.About = about
	return user, nil
}

// UpdateAvatar implements the UserStore interface
func (m *MockUserStore) UpdateAvatar(
	ctx context.Context,
	id uuid.UUID,
	avatarURL string,
) (*domain.User, error) {
	if m.UpdateAvatarFn != nil {
		return m.UpdateAvatarFn(ctx, id, avatarURL)
	}
	user, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateAvatarURL(avatarURL); err != nil {
		return nil, store.ErrInvalidEntity
	}
	user.AvatarURL = avatarURL
	return user, nil
}
