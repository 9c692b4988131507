package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/models"
)

// GET /admin/carts/:cart_id
func GetCartByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Param("cart_id")
		if cartID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart_id is required"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").First(&cart, "cart_id = ?", cartID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// GET /admin/carts
func GetAllCarts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var carts []models.Cart
		if err := db.Preload("Items").Find(&carts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carts"})
			return
		}

		c.JSON(http.StatusOK, carts)
	}
}

// GET /admin/carts/export-excel
func ExportCartsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var carts []models.Cart
		if err := db.Preload("Items").Find(&carts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carts"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Carts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"CartID", "UserID", "ProductID", "Quantity", "Price",
			"AddedAt", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// One row per cart item
		for _, cart := range carts {
			for _, item := range cart.Items {
				row := sheet.AddRow()

				row.AddCell().SetValue(cart.CartID)
				row.AddCell().SetValue(cart.UserID)
				row.AddCell().SetValue(item.ProductID)
				row.AddCell().SetValue(item.Quantity)
				row.AddCell().SetValue(item.Price)
				row.AddCell().SetValue(item.AddedAt.Format("2006-01-02 15:04:05"))
				row.AddCell().SetValue(cart.CreatedAt.Format("2006-01-02 15:04:05"))
				row.AddCell().SetValue(cart.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=carts.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
