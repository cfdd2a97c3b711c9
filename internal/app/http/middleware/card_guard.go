package middleware

import (
	"errors"
	"net/http"

	"indi-cards/internal/cardstore"
	"indi-cards/internal/domain/cards"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const cardKey = "card"

// RequireCard loads the card named by the :id path param, aborting with 404
// when it is not stored.
func RequireCard(store *cardstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		card, err := store.GetCard(c.Request.Context(), c.Param("id"))
		if err != nil {
			AbortWithStoreError(c, err)
			return
		}
		c.Set(cardKey, card)
		c.Next()
	}
}

// CardFrom returns the card loaded by RequireCard.
func CardFrom(c *gin.Context) cards.Card {
	return c.MustGet(cardKey).(cards.Card)
}

// AbortWithStoreError maps card store errors onto HTTP statuses.
func AbortWithStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cardstore.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Card not found"})
	case errors.Is(err, cardstore.ErrInvalidCard):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, cardstore.ErrStorageUnavailable):
		log.WithError(err).Error("card storage unavailable")
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Card storage unavailable"})
	default:
		log.WithError(err).Error("card store error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error"})
	}
}
