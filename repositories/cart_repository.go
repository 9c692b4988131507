package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/models"
)

// CartRepository is the durable store for registered-user carts.
// FindByID returns (nil, nil) when no cart exists for the identifier.
type CartRepository interface {
	Save(ctx context.Context, cart *models.Cart) (*models.Cart, error)
	FindByID(ctx context.Context, cartID string) (*models.Cart, error)
	FindAll(ctx context.Context) ([]models.Cart, error)
	Delete(ctx context.Context, cart *models.Cart) error
}

type gormCartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &gormCartRepository{db: db}
}

// Save upserts the cart row and rewrites its item rows. The item rows are
// replaced wholesale so that items removed by a reconciled update do not
// linger. Last writer wins; there is no version check before overwrite.
func (r *gormCartRepository) Save(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	for i := range cart.Items {
		cart.Items[i].ID = 0
		cart.Items[i].CartID = cart.CartID
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(cart).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save cart %s: %w", cart.CartID, err)
	}
	return cart, nil
}

func (r *gormCartRepository) FindByID(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).Preload("Items").First(&cart, "cart_id = ?", cartID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart %s: %w", cartID, err)
	}
	return &cart, nil
}

func (r *gormCartRepository) FindAll(ctx context.Context) ([]models.Cart, error) {
	var carts []models.Cart
	if err := r.db.WithContext(ctx).Preload("Items").Find(&carts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch carts: %w", err)
	}
	return carts, nil
}

func (r *gormCartRepository) Delete(ctx context.Context, cart *models.Cart) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(cart).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete cart %s: %w", cart.CartID, err)
	}
	return nil
}
