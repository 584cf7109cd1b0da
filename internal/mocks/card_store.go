package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/nshelest/mesto-api/internal/domain"
	"github.com/nshelest/mesto-api/internal/store"
)

// MockCardStore implements store.CardStore for testing.
// The default implementation is an in-memory map with set semantics on
// likes, mirroring the contract of the Postgres store.
type MockCardStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, card *domain.Card) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	ListFn       func(ctx context.Context) ([]*domain.Card, error)
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
	AddLikeFn    func(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)
	RemoveLikeFn func(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)

	// Data for the default map-backed implementation.
	Cards map[uuid.UUID]*domain.Card
}

// Ensure MockCardStore implements store.CardStore interface
var _ store.CardStore = (*MockCardStore)(nil)

// NewMockCardStore creates a new mock store with initialized defaults
func NewMockCardStore() *MockCardStore {
	return &MockCardStore{
		Cards: make(map[uuid.UUID]*domain.Card),
	}
}

// Create implements the CardStore interface
func (m *MockCardStore) Create(ctx context.Context, card *domain.Card) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, card)
	}
	m.Cards[card.ID] = card
	return nil
}

// GetByID implements the CardStore interface
func (m *MockCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	card, exists := m.Cards[id]
	if !exists {
		return nil, store.ErrCardNotFound
	}
	return card, nil
}

// List implements the CardStore interface
func (m *MockCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	cards := []*domain.Card{}
	for _, card := range m.Cards {
		cards = append(cards, card)
	}
	return cards, nil
}

// Delete implements the CardStore interface
func (m *MockCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, exists := m.Cards[id]; !exists {
		return store.ErrCardNotFound
	}
	delete(m.Cards, id)
	return nil
}

// AddLike implements the CardStore interface
func (m *MockCardStore) AddLike(
	ctx context.Context,
	cardID, userID uuid.UUID,
) (*domain.Card, error) {
	if m.AddLikeFn != nil {
		return m.AddLikeFn(ctx, cardID, userID)
	}
	card, exists := m.Cards[cardID]
	if !exists {
		return nil, store.ErrCardNotFound
	}
	if !card.LikedBy(userID) {
		card.Likes = append(card.Likes, userID)
	}
	return card, nil
}

// RemoveLike implements the CardStore interface
func (m *MockCardStore) RemoveLike(
	ctx context.Context,
	cardID, userID uuid.UUID,
) (*domain.Card, error) {
	if m.RemoveLikeFn != nil {
		return m.RemoveLikeFn(ctx, cardID, userID)
	}
	card, exists := m.Cards[cardID]
	if !exists {
		return nil, store.ErrCardNotFound
	}
	likes := card.Likes[:0]
	for _, id := range card.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	card.Likes = likes
	return card, nil
}
