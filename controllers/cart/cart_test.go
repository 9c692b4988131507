package cartControllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/models"
	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/services"
)

type stubService struct {
	cart *models.Cart
	err  error
}

func (s *stubService) SaveCart(ctx context.Context, userID string, items []services.NewItem) (*models.Cart, error) {
	return s.cart, s.err
}

func (s *stubService) GetCart(ctx context.Context, cartID string) (*models.Cart, error) {
	return s.cart, s.err
}

func (s *stubService) AddItems(ctx context.Context, cartID string, items []services.NewItem) (*models.Cart, error) {
	return s.cart, s.err
}

func (s *stubService) UpdateCart(ctx context.Context, cartID string, update services.CartUpdate) (*models.Cart, error) {
	return s.cart, s.err
}

func (s *stubService) DeleteCart(ctx context.Context, cartID string) error {
	return s.err
}

func (s *stubService) MergeGuestCart(ctx context.Context, guestCartID, userID string) (*models.Cart, error) {
	return s.cart, s.err
}

func perform(handler gin.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestSaveCartHandler(t *testing.T) {
	t.Run("valid payload -> 201", func(t *testing.T) {
		svc := &stubService{cart: &models.Cart{CartID: "c1"}}
		w := perform(SaveCart(svc), http.MethodPost, "/api/v1/carts",
			`{"user_id":"u1","items":[{"product_id":"p1","quantity":2,"price":10}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing items -> 400", func(t *testing.T) {
		svc := &stubService{}
		w := perform(SaveCart(svc), http.MethodPost, "/api/v1/carts", `{"user_id":"u1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quantity above limit -> 400", func(t *testing.T) {
		svc := &stubService{}
		w := perform(SaveCart(svc), http.MethodPost, "/api/v1/carts",
			`{"items":[{"product_id":"p1","quantity":6,"price":1}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestGetCartHandler(t *testing.T) {
	t.Run("missing cart_id -> 400", func(t *testing.T) {
		w := perform(GetCart(&stubService{}), http.MethodGet, "/api/v1/carts", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown id -> 404", func(t *testing.T) {
		svc := &stubService{err: services.ErrCartNotFound}
		w := perform(GetCart(svc), http.MethodGet, "/api/v1/carts?cart_id=nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found -> 200", func(t *testing.T) {
		svc := &stubService{cart: &models.Cart{CartID: "c1"}}
		w := perform(GetCart(svc), http.MethodGet, "/api/v1/carts?cart_id=c1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestUpdateCartHandler(t *testing.T) {
	t.Run("no-op update -> 202, not an error", func(t *testing.T) {
		svc := &stubService{err: services.ErrNothingToUpdate}
		w := perform(UpdateCart(svc), http.MethodPut, "/api/v1/carts?cart_id=c1",
			`{"items":[{"product_id":"p1","quantity":2,"price":10}]}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Nothing new to update") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("changed -> 200", func(t *testing.T) {
		svc := &stubService{cart: &models.Cart{CartID: "c1"}}
		w := perform(UpdateCart(svc), http.MethodPut, "/api/v1/carts?cart_id=c1",
			`{"items":[{"product_id":"p1","quantity":3,"price":10}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown cart -> 404", func(t *testing.T) {
		svc := &stubService{err: services.ErrCartNotFound}
		w := perform(UpdateCart(svc), http.MethodPut, "/api/v1/carts?cart_id=nope", `{"items":[]}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDeleteCartHandler(t *testing.T) {
	t.Run("unknown cart -> 404", func(t *testing.T) {
		svc := &stubService{err: services.ErrCartNotFound}
		w := perform(DeleteCart(svc), http.MethodDelete, "/api/v1/carts?cart_id=nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("deleted -> 200", func(t *testing.T) {
		svc := &stubService{}
		w := perform(DeleteCart(svc), http.MethodDelete, "/api/v1/carts?cart_id=c1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMergeGuestCartHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("token user mismatch -> 403", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/carts/merge/user-42?cart_id=g1", strings.NewReader(""))
		c.Params = gin.Params{{Key: "user_id", Value: "user-42"}}
		c.Set("user_id", "someone-else")

		MergeGuestCart(&stubService{})(c)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("expired guest cart -> 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/carts/merge/user-42?cart_id=g1", strings.NewReader(""))
		c.Params = gin.Params{{Key: "user_id", Value: "user-42"}}
		c.Set("user_id", "user-42")

		MergeGuestCart(&stubService{err: services.ErrCartNotFound})(c)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("merged -> 200 with durable cart", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/carts/merge/user-42?cart_id=g1", strings.NewReader(""))
		c.Params = gin.Params{{Key: "user_id", Value: "user-42"}}
		c.Set("user_id", "user-42")

		MergeGuestCart(&stubService{cart: &models.Cart{CartID: "c-new", UserID: "user-42"}})(c)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "c-new") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
