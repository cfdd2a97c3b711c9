package auth

import (
	"net/http"
	"strings"
	"time"

	"indi-cards/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

const sessionTTL = 24 * time.Hour

// Login is a stubbed sign-in: there is no account store, so any well-formed
// email gets a session token. It exists so clients can exercise the
// authenticated routes the same way they would against a real identity provider.
func Login(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": strings.ToLower(strings.TrimSpace(input.Email)),
		"exp":   time.Now().Add(sessionTTL).Unix(),
	})

	jwtKey := []byte(config.JWT_SECRET)
	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		log.WithError(err).Error("could not sign session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}
