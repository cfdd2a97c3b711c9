package cardsapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"indi-cards/internal/app/http/middleware"
	"indi-cards/internal/cardstore"
	"indi-cards/internal/domain/cards"
	"indi-cards/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// BioGenerator is the AI collaborator behind POST /bio.
type BioGenerator interface {
	GenerateBio(ctx context.Context, title, company, keywords string) string
}

type Handler struct {
	Store    *cardstore.Store
	Bio      BioGenerator
	Payments stripe.Confirmer
	Now      func() time.Time
}

func NewHandler(store *cardstore.Store, bio BioGenerator, payments stripe.Confirmer) *Handler {
	return &Handler{Store: store, Bio: bio, Payments: payments, Now: time.Now}
}

func (h *Handler) toDTO(c cards.Card) CardDTO {
	return CardDTO{Card: c, Subscription: h.Store.Policy(c)}
}

func (h *Handler) toDTOs(list []cards.Card) CardsResponse {
	out := CardsResponse{Cards: make([]CardDTO, 0, len(list))}
	for _, c := range list {
		out.Cards = append(out.Cards, h.toDTO(c))
	}
	return out
}

// ------------------------------
// GET /cards
// ------------------------------
func (h *Handler) ListCards(c *gin.Context) {
	list, err := h.Store.ListCards(c.Request.Context())
	if err != nil {
		middleware.AbortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toDTOs(list))
}

// ------------------------------
// POST /cards
// ------------------------------
func (h *Handler) CreateCard(c *gin.Context) {
	card, err := h.Store.CreateCard(c.Request.Context())
	if err != nil {
		middleware.AbortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toDTO(card))
}

// ------------------------------
// GET /cards/active?id=  (selection lives with the client)
// ------------------------------
func (h *Handler) GetActiveCard(c *gin.Context) {
	list, err := h.Store.ListCards(c.Request.Context())
	if err != nil {
		middleware.AbortWithStoreError(c, err)
		return
	}

	var selection *string
	if id, ok := c.GetQuery("id"); ok {
		selection = &id
	}

	card := cards.ResolveActiveCard(selection, list, h.Now())
	persisted := selection != nil && card.ID == *selection

	c.JSON(http.StatusOK, ActiveCardResponse{Card: h.toDTO(card), Persisted: persisted})
}

// ------------------------------
// GET /cards/:id
// ------------------------------
func (h *Handler) GetCard(c *gin.Context) {
	c.JSON(http.StatusOK, h.toDTO(middleware.CardFrom(c)))
}

// ------------------------------
// PUT /cards/:id  (full overwrite of the editable fields)
// ------------------------------
func (h *Handler) UpdateCard(c *gin.Context) {
	var req cards.Card
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored := middleware.CardFrom(c)

	// identity, trial clock, plan and publish state only change through
	// their own endpoints
	req.ID = stored.ID
	req.CreatedAt = stored.CreatedAt
	req.TrialStartedAt = stored.TrialStartedAt
	req.PlanType = stored.PlanType
	req.SubscriptionStatus = stored.SubscriptionStatus
	req.IsPublished = stored.IsPublished
	req.PublishedURL = stored.PublishedURL
	req.UpdatedAt = h.Now().UTC()
	for i := range req.Links {
		if req.Links[i].ID == "" {
			req.Links[i].ID = uuid.NewString()
		}
	}

	list, err := h.Store.SaveCard(c.Request.Context(), req)
	if err != nil {
		middleware.AbortWithStoreError(c, err)
		return
	}

	for _, saved := range list {
		if saved.ID == req.ID {
			c.JSON(http.StatusOK, h.toDTO(saved))
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Saved card missing from collection"})
}

// ------------------------------
// DELETE /cards/:id  (unknown ids are a no-op)
// ------------------------------
func (h *Handler) DeleteCard(c *gin.Context) {
	list, err := h.Store.DeleteCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.AbortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toDTOs(list))
}

// ------------------------------
// POST /cards/:id/publish
// ------------------------------
func (h *Handler) PublishCard(c *gin.Context) {
	card := middleware.CardFrom(c)

	// already live: keep the shared link stable unless a new one is asked for
	if card.IsPublished && c.Query("regenerate") != "true" {
		c.JSON(http.StatusOK, h.toDTO(card))
		return
	}

	res := <-h.Store.PublishAsync(c.Request.Context(), card)
	if res.Err != nil {
		if errors.Is(res.Err, context.Canceled) {
			return
		}
		middleware.AbortWithStoreError(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, h.toDTO(res.Card))
}

// ------------------------------
// POST /cards/:id/unpublish
// ------------------------------
func (h *Handler) UnpublishCard(c *gin.Context) {
	card, err := h.Store.UnpublishCard(c.Request.Context(), middleware.CardFrom(c))
	if err != nil {
		middleware.AbortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toDTO(card))
}

// ------------------------------
// POST /cards/:id/upgrade
// ------------------------------
func (h *Handler) UpgradeCard(c *gin.Context) {
	var req UpgradeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	card := middleware.CardFrom(c)

	if err := h.Payments.Confirm(c.Request.Context(), req.Reference); err != nil {
		if errors.Is(err, stripe.ErrPaymentNotConfirmed) || errors.Is(err, stripe.ErrMissingReference) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).WithField("card_id", card.ID).Error("payment confirmation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not confirm payment"})
		return
	}

	upgraded, err := h.Store.UpgradeCard(c.Request.Context(), card)
	if err != nil {
		middleware.AbortWithStoreError(c, err)
		return
	}
	log.WithFields(log.Fields{
		"card_id":   upgraded.ID,
		"email":     c.GetString(middleware.EmailKey),
		"reference": req.Reference,
	}).Info("upgrade confirmed")
	c.JSON(http.StatusOK, h.toDTO(upgraded))
}

// ------------------------------
// GET /cards/:id/subscription
// ------------------------------
func (h *Handler) GetSubscription(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Policy(middleware.CardFrom(c)))
}

// ------------------------------
// POST /bio
// ------------------------------
func (h *Handler) GenerateBio(c *gin.Context) {
	var req BioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bio := h.Bio.GenerateBio(c.Request.Context(), req.Title, req.Company, req.Keywords)
	c.JSON(http.StatusOK, BioResponse{Bio: bio})
}
