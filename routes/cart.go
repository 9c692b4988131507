package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/AnkanRoychowdhury/EcomCartManagementSystem/controllers/cart"
	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/middleware"
	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/services"
)

// SetupCartRoutes registers all “/api/v1/carts” endpoints.
func SetupCartRoutes(r *gin.Engine, svc services.CartService) {
	cartGroup := r.Group("/api/v1/carts")
	{
		cartGroup.POST("", cartControllers.SaveCart(svc))              // POST   /api/v1/carts
		cartGroup.GET("", cartControllers.GetCart(svc))                // GET    /api/v1/carts?cart_id=
		cartGroup.PATCH("/items", cartControllers.AddItemsToCart(svc)) // PATCH  /api/v1/carts/items?cart_id=
		cartGroup.PUT("", cartControllers.UpdateCart(svc))             // PUT    /api/v1/carts?cart_id=
		cartGroup.DELETE("", cartControllers.DeleteCart(svc))          // DELETE /api/v1/carts?cart_id=

		// Claiming a guest cart requires a logged-in user
		cartGroup.POST("/merge/:user_id", middleware.ValidateToken, cartControllers.MergeGuestCart(svc))
	}
}
