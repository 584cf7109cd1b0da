package api

import (
	"log/slog"
	"net/http"

	"github.com/nshelest/mesto-api/internal/api/shared"
	"github.com/nshelest/mesto-api/internal/domain"
	"github.com/nshelest/mesto-api/internal/store"
)

// CardHandler handles the authenticated card endpoints.
type CardHandler struct {
	cardStore store.CardStore
	logger    *slog.Logger
}

// NewCardHandler creates a new CardHandler with the given dependencies.
func NewCardHandler(cardStore store.CardStore, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		cardStore: cardStore,
		logger:    logger.With(slog.String("component", "card_handler")),
	}
}

// ListCards handles GET /cards.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}

// CreateCard handles POST /cards. The principal becomes the owner.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid card data")
		return
	}

	card, err := domain.NewCard(userID, req.Name, req.Link)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.cardStore.Create(r.Context(), card); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, card)
}

// DeleteCard handles DELETE /cards/{cardId}.
// Existence is checked before ownership: a missing card is 404, never 403.
// Only the owner may delete; the deleted card is returned.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	cardID, err := getPathUUID(r, "cardId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	card, err := h.cardStore.GetByID(r.Context(), cardID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if card.OwnerID != userID {
		HandleAPIError(w, r, domain.ErrForbidden, "")
		return
	}

	if err := h.cardStore.Delete(r.Context(), cardID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// LikeCard handles PUT /cards/{cardId}/likes.
// Any authenticated principal may like any card; liking twice is a no-op.
func (h *CardHandler) LikeCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	cardID, err := getPathUUID(r, "cardId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	card, err := h.cardStore.AddLike(r.Context(), cardID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// DislikeCard handles DELETE /cards/{cardId}/likes.
// Removing a like that was never set succeeds and changes nothing.
func (h *CardHandler) DislikeCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	cardID, err := getPathUUID(r, "cardId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	card, err := h.cardStore.RemoveLike(r.Context(), cardID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, card)
}
