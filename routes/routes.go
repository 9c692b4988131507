package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/cache"
	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/services"
)

// SetupRoutes is the single entry‐point that wires up Auth, Cart, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, svc services.CartService, guests cache.GuestCartStore) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, guests)

	// 2️⃣ Cart routes (merge endpoint is JWT‐protected)
	SetupCartRoutes(r, svc)

	// 3️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, db)
}
