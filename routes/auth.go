package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/auth"
	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/cache"
)

// SetupAuthRoutes registers the public “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, guests cache.GuestCartStore) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestSession(guests)) // POST /auth/guest
	}
}
