package cli

import (
	"time"

	"indi-cards/config"
	cardsapi "indi-cards/internal/api/cards"
	routes "indi-cards/internal/app/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand(load Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd, load, func(d *Deps) error {
				// gin.SetMode(gin.ReleaseMode) uncomment only in production
				r := gin.Default()

				// ✅ Add CORS middleware BEFORE registering routes
				r.Use(cors.New(cors.Config{
					AllowOrigins:     []string{config.CORS_ORIGIN},
					AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
					AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
					ExposeHeaders:    []string{"Content-Length"},
					AllowCredentials: true,
					MaxAge:           12 * time.Hour,
				}))

				routes.RegisterRoutes(r, cardsapi.NewHandler(d.Store, d.Bio, d.Payments))

				log.WithField("port", config.PORT).Info("🚀 Listening")
				return r.Run(":" + config.PORT)
			})
		},
	}
}
