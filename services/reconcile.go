package services

import (
	"time"

	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/models"
)

// ItemChange is one proposed per-product change in a cart update.
// A zero Quantity or Price means the field was not supplied.
type ItemChange struct {
	ProductID string
	Quantity  int
	Price     float64
}

// ReconcileItems merges the proposed changes into the existing item
// collection and reports whether anything actually changed.
//
// A product id not present in the cart is inserted as a new item and always
// counts as a change, whatever its field values. For a product id already in
// the cart, quantity and price are compared field by field and applied only
// when supplied (> 0) and different from the stored value; prices compare by
// exact float equality. Duplicate product ids within one proposed list: the
// last entry wins. The returned slice is in no particular order.
func ReconcileItems(existing []models.CartItem, proposed []ItemChange) ([]models.CartItem, bool) {
	merged := make(map[string]models.CartItem, len(existing))
	for _, item := range existing {
		merged[item.ProductID] = item
	}

	changed := false
	for _, change := range proposed {
		current, ok := merged[change.ProductID]
		if !ok {
			merged[change.ProductID] = models.CartItem{
				ProductID: change.ProductID,
				Quantity:  change.Quantity,
				Price:     change.Price,
				AddedAt:   time.Now(),
			}
			changed = true
			continue
		}
		if change.Quantity > 0 && change.Quantity != current.Quantity {
			current.Quantity = change.Quantity
			changed = true
		}
		if change.Price > 0 && change.Price != current.Price {
			current.Price = change.Price
			changed = true
		}
		merged[change.ProductID] = current
	}

	items := make([]models.CartItem, 0, len(merged))
	for _, item := range merged {
		items = append(items, item)
	}
	return items, changed
}
