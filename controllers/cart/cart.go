package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/services"
)

type CartItemInput struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1,max=5"`
	Price     float64 `json:"price" binding:"min=0"`
}

type SaveCartInput struct {
	UserID string          `json:"user_id"`
	Items  []CartItemInput `json:"items" binding:"required,min=1,dive"`
}

// UpdateCartItemInput allows zero quantity/price: zero means the field was
// not supplied and must not overwrite the stored value.
type UpdateCartItemInput struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"min=0,max=5"`
	Price     float64 `json:"price" binding:"min=0"`
}

type UpdateCartInput struct {
	UserID string                `json:"user_id"`
	Items  []UpdateCartItemInput `json:"items" binding:"dive"`
}

// POST /api/v1/carts
func SaveCart(svc services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SaveCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := svc.SaveCart(c.Request.Context(), input.UserID, toNewItems(input.Items))
		if err != nil {
			if errors.Is(err, services.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			return
		}

		broadcastCartEvent("created", cart)
		c.JSON(http.StatusCreated, cart)
	}
}

// GET /api/v1/carts?cart_id=
func GetCart(svc services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Query("cart_id")
		if cartID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart_id is required"})
			return
		}

		cart, err := svc.GetCart(c.Request.Context(), cartID)
		if err != nil {
			if errors.Is(err, services.ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// PATCH /api/v1/carts/items?cart_id=
func AddItemsToCart(svc services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Query("cart_id")
		if cartID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart_id is required"})
			return
		}

		var items []CartItemInput
		if err := c.ShouldBindJSON(&items); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one item is required"})
			return
		}

		cart, err := svc.AddItems(c.Request.Context(), cartID, toNewItems(items))
		if err != nil {
			if errors.Is(err, services.ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add items to cart"})
			return
		}

		broadcastCartEvent("items_added", cart)
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /api/v1/carts?cart_id=
func UpdateCart(svc services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Query("cart_id")
		if cartID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart_id is required"})
			return
		}

		var input UpdateCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		update := services.CartUpdate{UserID: input.UserID}
		for _, item := range input.Items {
			update.Items = append(update.Items, services.ItemChange{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}

		cart, err := svc.UpdateCart(c.Request.Context(), cartID, update)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCartNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			case errors.Is(err, services.ErrNothingToUpdate):
				// A no-op update is accepted, not failed
				c.JSON(http.StatusAccepted, gin.H{"message": "Nothing new to update"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			}
			return
		}

		broadcastCartEvent("updated", cart)
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/v1/carts?cart_id=
func DeleteCart(svc services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Query("cart_id")
		if cartID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart_id is required"})
			return
		}

		if err := svc.DeleteCart(c.Request.Context(), cartID); err != nil {
			if errors.Is(err, services.ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart deleted"})
	}
}

// POST /api/v1/carts/merge/:user_id?cart_id=
func MergeGuestCart(svc services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		cartID := c.Query("cart_id")
		if cartID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart_id is required"})
			return
		}

		// The authenticated user may only claim carts for themselves
		if tokenUser, exists := c.Get("user_id"); exists && tokenUser != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot merge a cart for another user"})
			return
		}

		cart, err := svc.MergeGuestCart(c.Request.Context(), cartID, userID)
		if err != nil {
			if errors.Is(err, services.ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to merge cart"})
			return
		}

		broadcastCartEvent("merged", cart)
		c.JSON(http.StatusOK, cart)
	}
}

func toNewItems(items []CartItemInput) []services.NewItem {
	newItems := make([]services.NewItem, 0, len(items))
	for _, item := range items {
		newItems = append(newItems, services.NewItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return newItems
}
