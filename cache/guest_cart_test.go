package cache

import (
	"testing"
	"time"

	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/models"
)

func TestGuestCartKey(t *testing.T) {
	if got := guestCartKey("abc-123"); got != "cart:guest:abc-123" {
		t.Fatalf("unexpected key: %q", got)
	}
}

func TestCartRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	cart := &models.Cart{
		CartID: "g1",
		UserID: "user-1",
		Items: []models.CartItem{
			{ProductID: "p1", Quantity: 2, Price: 10.5, AddedAt: now},
			{ProductID: "p2", Quantity: 1, Price: 0.99, AddedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	data, err := encodeCart(cart)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	decoded, err := decodeCart(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded.CartID != cart.CartID || decoded.UserID != cart.UserID {
		t.Fatalf("identity fields lost: %+v", decoded)
	}
	if len(decoded.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(decoded.Items))
	}
	for i, item := range decoded.Items {
		want := cart.Items[i]
		if item.ProductID != want.ProductID || item.Quantity != want.Quantity || item.Price != want.Price {
			t.Fatalf("item %d did not round-trip: got %+v want %+v", i, item, want)
		}
	}
}

func TestDecodeCartRejectsGarbage(t *testing.T) {
	if _, err := decodeCart([]byte("{not json")); err == nil {
		t.Fatal("expected an error for malformed payload")
	}
}
