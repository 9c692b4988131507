package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/cache"
	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/models"
)

// POST /auth/guest
//
// Bootstraps an anonymous shopping session: an empty guest cart in the cache
// plus a short-lived token carrying its id. The cart id doubles as the
// session handle until the guest logs in and the cart is merged.
func CreateGuestSession(guests cache.GuestCartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := uuid.NewString()

		cart := &models.Cart{
			CartID:    cartID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := guests.Save(c.Request.Context(), cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest cart"})
			return
		}

		token, err := issueGuestToken(cartID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"cart_id":    cartID,
			"token":      token,
			"expires_at": time.Now().Add(cache.DefaultGuestCartTTL),
		})
	}
}

func issueGuestToken(cartID string) (string, error) {
	claims := jwt.MapClaims{
		"cart_id": cartID,
		"role":    "guest",
		"exp":     time.Now().Add(cache.DefaultGuestCartTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
