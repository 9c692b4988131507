package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/AnkanRoychowdhury/EcomCartManagementSystem/controllers/admin"
	cartControllers "github.com/AnkanRoychowdhury/EcomCartManagementSystem/controllers/cart"
	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Cart Back-Office ───────────
		cartAdmin := adminGroup.Group("/carts")
		{
			cartAdmin.GET("", adminController.GetAllCarts(db))
			cartAdmin.GET("/export-excel", adminController.ExportCartsToExcel(db))
			cartAdmin.GET("/live", cartControllers.CartEventsHandler)
			cartAdmin.GET("/:cart_id", adminController.GetCartByID(db))
		}
	}
}
