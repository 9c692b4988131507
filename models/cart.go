package models

import "time"

type Cart struct {
	CartID    string     `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"index" json:"user_id,omitempty"` // empty for guest carts
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CartID    string    `gorm:"index" json:"-"` // Faster queries
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	AddedAt   time.Time `json:"added_at"`
}
