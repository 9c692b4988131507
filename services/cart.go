package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/cache"
	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/models"
	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/repositories"
)

// NewItem is an item to place in a cart on create or add.
type NewItem struct {
	ProductID string
	Quantity  int
	Price     float64
}

// CartUpdate is a full-update request: an optional new owner plus per-product
// item changes, consumed once by UpdateCart.
type CartUpdate struct {
	UserID string
	Items  []ItemChange
}

// CartService owns the cart lifecycle: guest-vs-registered storage routing,
// reconciled updates and the merge-on-login flow.
type CartService interface {
	SaveCart(ctx context.Context, userID string, items []NewItem) (*models.Cart, error)
	GetCart(ctx context.Context, cartID string) (*models.Cart, error)
	AddItems(ctx context.Context, cartID string, items []NewItem) (*models.Cart, error)
	UpdateCart(ctx context.Context, cartID string, update CartUpdate) (*models.Cart, error)
	DeleteCart(ctx context.Context, cartID string) error
	MergeGuestCart(ctx context.Context, guestCartID, userID string) (*models.Cart, error)
}

type cartService struct {
	repo   repositories.CartRepository
	guests cache.GuestCartStore
}

func NewCartService(repo repositories.CartRepository, guests cache.GuestCartStore) CartService {
	return &cartService{repo: repo, guests: guests}
}

// SaveCart creates a cart with a fresh identifier. Carts without an owner are
// guest carts and live only in the cache until merged or expired; owned carts
// are persisted durably.
func (s *cartService) SaveCart(ctx context.Context, userID string, items []NewItem) (*models.Cart, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	cart := &models.Cart{
		CartID:    uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	cart.Items = toCartItems(cart.CartID, items)

	if userID == "" {
		if err := s.guests.Save(ctx, cart); err != nil {
			return nil, err
		}
		return cart, nil
	}
	return s.repo.Save(ctx, cart)
}

// GetCart looks in the guest cache first, then falls back to the durable
// store. An expired guest entry therefore surfaces as ErrCartNotFound.
func (s *cartService) GetCart(ctx context.Context, cartID string) (*models.Cart, error) {
	cart, err := s.guests.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	cart, err = s.repo.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// AddItems appends the given items to a persisted cart as-is, with no
// de-duplication against product ids already in the cart. The reconciled
// merge path is UpdateCart.
func (s *cartService) AddItems(ctx context.Context, cartID string, items []NewItem) (*models.Cart, error) {
	cart, err := s.findDurable(ctx, cartID)
	if err != nil {
		return nil, err
	}
	cart.Items = append(cart.Items, toCartItems(cartID, items)...)
	return s.repo.Save(ctx, cart)
}

// UpdateCart reconciles the submitted changes into the persisted cart. An
// update that changes nothing is rejected with ErrNothingToUpdate rather than
// silently re-saved. Concurrent updates of one cart are last-writer-wins;
// there is no version check.
func (s *cartService) UpdateCart(ctx context.Context, cartID string, update CartUpdate) (*models.Cart, error) {
	cart, err := s.findDurable(ctx, cartID)
	if err != nil {
		return nil, err
	}

	changed := false
	if update.UserID != "" && update.UserID != cart.UserID {
		cart.UserID = update.UserID
		changed = true
	}

	items, itemsChanged := ReconcileItems(cart.Items, update.Items)
	if !changed && !itemsChanged {
		return nil, ErrNothingToUpdate
	}
	cart.Items = items
	return s.repo.Save(ctx, cart)
}

func (s *cartService) DeleteCart(ctx context.Context, cartID string) error {
	cart, err := s.findDurable(ctx, cartID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, cart)
}

// MergeGuestCart turns a cached guest cart into a durable cart owned by
// userID. The durable cart gets a fresh identifier; the guest identifier is
// discarded. The cache entry is removed last, and a failed removal is
// reported because a leftover guest entry would serve stale data.
func (s *cartService) MergeGuestCart(ctx context.Context, guestCartID, userID string) (*models.Cart, error) {
	guest, err := s.guests.Get(ctx, guestCartID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrCartNotFound
	}

	cart := &models.Cart{
		CartID:    uuid.NewString(),
		UserID:    userID,
		Items:     guest.Items,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	merged, err := s.repo.Save(ctx, cart)
	if err != nil {
		return nil, err
	}
	if err := s.guests.Delete(ctx, guestCartID); err != nil {
		return nil, fmt.Errorf("cart %s merged but guest entry %s not removed: %w", merged.CartID, guestCartID, err)
	}
	return merged, nil
}

func (s *cartService) findDurable(ctx context.Context, cartID string) (*models.Cart, error) {
	cart, err := s.repo.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

func toCartItems(cartID string, items []NewItem) []models.CartItem {
	cartItems := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		cartItems = append(cartItems, models.CartItem{
			CartID:    cartID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			AddedAt:   time.Now(),
		})
	}
	return cartItems
}
