package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card represents a shared photo card.
// Likes carries set semantics: a user id appears at most once regardless
// of how many times the like operation ran.
type Card struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Link      string      `json:"link"`
	OwnerID   uuid.UUID   `json:"owner"`
	Likes     []uuid.UUID `json:"likes"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewCard creates a new Card owned by the given user.
// Returns an error if validation fails.
func NewCard(ownerID uuid.UUID, name, link string) (*Card, error) {
	card := &Card{
		ID:        uuid.New(),
		Name:      name,
		Link:      link,
		OwnerID:   ownerID,
		Likes:     []uuid.UUID{},
		CreatedAt: time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns a ValidationError naming the offending field on failure.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrValidation)
	}

	if c.OwnerID == uuid.Nil {
		return NewValidationError("owner", "cannot be empty", ErrValidation)
	}

	if err := validateRuneLength("name", c.Name, 2, 30); err != nil {
		return err
	}

	return validateURL("link", c.Link)
}

// LikedBy reports whether the given user id is in the card's like set.
func (c *Card) LikedBy(userID uuid.UUID) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
