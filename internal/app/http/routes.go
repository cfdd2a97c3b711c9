package routes

import (
	authapi "indi-cards/internal/api/auth"
	cardsapi "indi-cards/internal/api/cards"
	"indi-cards/internal/api/plans"
	"indi-cards/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *cardsapi.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ✅ Input sanitization applies to every route that takes a body
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/login", authapi.Login)
	public.GET("/plans", plans.ListPlans)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeAndCleanInputMiddleware())

	auth.GET("/cards", h.ListCards)
	auth.POST("/cards", h.CreateCard)
	auth.GET("/cards/active", h.GetActiveCard)
	auth.DELETE("/cards/:id", h.DeleteCard)
	auth.POST("/bio", h.GenerateBio)

	card := auth.Group("/cards/:id")
	card.Use(middleware.RequireCard(h.Store))
	card.GET("", h.GetCard)
	card.PUT("", h.UpdateCard)
	card.POST("/publish", h.PublishCard)
	card.POST("/unpublish", h.UnpublishCard)
	card.POST("/upgrade", h.UpgradeCard)
	card.GET("/subscription", h.GetSubscription)
}
