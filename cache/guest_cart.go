package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/models"
)

// DefaultGuestCartTTL is how long a guest cart survives in the cache,
// counted from the last write. Reads do not renew it.
const DefaultGuestCartTTL = time.Hour

const guestKeyPrefix = "cart:guest:"

// GuestCartStore holds guest carts in a transient keyed store.
// Get returns (nil, nil) when the entry is absent or expired.
type GuestCartStore interface {
	Save(ctx context.Context, cart *models.Cart) error
	Get(ctx context.Context, cartID string) (*models.Cart, error)
	Delete(ctx context.Context, cartID string) error
}

// RedisGuestCartStore keeps guest carts as JSON strings in Redis.
type RedisGuestCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGuestCartStore(client *redis.Client, ttl time.Duration) *RedisGuestCartStore {
	if ttl <= 0 {
		ttl = DefaultGuestCartTTL
	}
	return &RedisGuestCartStore{client: client, ttl: ttl}
}

func (s *RedisGuestCartStore) Save(ctx context.Context, cart *models.Cart) error {
	data, err := encodeCart(cart)
	if err != nil {
		return fmt.Errorf("failed to serialize guest cart %s: %w", cart.CartID, err)
	}
	if err := s.client.Set(ctx, guestCartKey(cart.CartID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save guest cart %s: %w", cart.CartID, err)
	}
	return nil
}

func (s *RedisGuestCartStore) Get(ctx context.Context, cartID string) (*models.Cart, error) {
	data, err := s.client.Get(ctx, guestCartKey(cartID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guest cart %s: %w", cartID, err)
	}
	return decodeCart([]byte(data))
}

func (s *RedisGuestCartStore) Delete(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, guestCartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("failed to delete guest cart %s: %w", cartID, err)
	}
	return nil
}

func guestCartKey(cartID string) string {
	return guestKeyPrefix + cartID
}

func encodeCart(cart *models.Cart) ([]byte, error) {
	return json.Marshal(cart)
}

func decodeCart(data []byte) (*models.Cart, error) {
	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to parse cached cart: %w", err)
	}
	return &cart, nil
}
