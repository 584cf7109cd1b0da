package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/nshelest/mesto-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card to the store.
	// Returns ErrInvalidEntity-wrapped validation errors if data is invalid.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// List retrieves all cards, newest first.
	List(ctx context.Context) ([]*domain.Card, error)

	// Delete removes a card from the store by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	// Ownership is checked by the caller before this destructive write.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddLike inserts userID into the card's like set and returns the
	// updated card. The operation is idempotent and performed as a single
	// atomic statement so concurrent likes from different users converge.
	// Returns ErrCardNotFound if the card does not exist.
	AddLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)

	// RemoveLike removes userID from the card's like set and returns the
	// updated card. Removing an absent like is a no-op, not an error.
	// Returns ErrCardNotFound if the card does not exist.
	RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)
}
