package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rl1809/retail-checkout/internal/adapter/shipping"
	"github.com/rl1809/retail-checkout/internal/core/domain"
	"github.com/rl1809/retail-checkout/internal/core/service"
)

func newTestHandler() (*HTTPHandler, *domain.Catalog, *domain.Customer) {
	catalog := domain.NewCatalog()
	catalog.AddOrReplace(domain.NewProduct("TV", decimal.NewFromInt(150), 5,
		domain.WithWeight(decimal.NewFromFloat(8.0))))
	catalog.AddOrReplace(domain.NewProduct("Scratch Card", decimal.NewFromInt(5), 100))
	catalog.AddOrReplace(domain.NewProduct("Old Milk", decimal.NewFromInt(3), 10,
		domain.WithExpiry(time.Now().AddDate(-1, 0, 0))))

	customer := domain.NewCustomer("Amir", decimal.NewFromInt(300))
	svc := service.NewCheckoutService(shipping.NewConsoleShipper(io.Discard), nil, nil, zap.NewNop())

	return NewHTTPHandler(catalog, customer, svc, nil), catalog, customer
}

func TestListProducts(t *testing.T) {
	h, _, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.ListProducts(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string][]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body["products"]) != 3 {
		t.Errorf("expected 3 products, got %d", len(body["products"]))
	}
}

func TestAddToCart(t *testing.T) {
	h, _, customer := newTestHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add",
		strings.NewReader(`{"name":"TV","quantity":2}`))
	h.AddToCart(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(customer.Cart().Items()) != 1 {
		t.Errorf("expected 1 line item, got %d", len(customer.Cart().Items()))
	}
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	h, _, _ := newTestHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add",
		strings.NewReader(`{"name":"Caviar","quantity":1}`))
	h.AddToCart(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestAddToCart_InvalidQuantity(t *testing.T) {
	h, _, customer := newTestHandler()

	for _, payload := range []string{
		`{"name":"TV","quantity":0}`,
		`{"name":"TV","quantity":-1}`,
		`{"name":"TV","quantity":6}`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(payload))
		h.AddToCart(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("payload %s: expected 400, got %d", payload, rec.Code)
		}
	}
	if !customer.Cart().IsEmpty() {
		t.Error("expected cart to stay empty")
	}
}

func TestCheckout_EmptyCartStatus(t *testing.T) {
	h, _, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.Checkout(rec, httptest.NewRequest(http.MethodPost, "/api/checkout", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCheckout_Success(t *testing.T) {
	h, catalog, customer := newTestHandler()

	tv, _ := catalog.Find("TV")
	if err := customer.Cart().Add(tv, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	rec := httptest.NewRecorder()
	h.Checkout(rec, httptest.NewRequest(http.MethodPost, "/api/checkout", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp ReceiptResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != "155.00" {
		t.Errorf("expected total 155.00, got %s", resp.Total)
	}
	if resp.RemainingBalance != "145.00" {
		t.Errorf("expected remaining 145.00, got %s", resp.RemainingBalance)
	}
	if len(resp.Manifest) != 1 {
		t.Errorf("expected 1 parcel, got %d", len(resp.Manifest))
	}
}

func TestCheckout_ErrorStatuses(t *testing.T) {
	t.Run("expired product", func(t *testing.T) {
		h, catalog, customer := newTestHandler()
		milk, _ := catalog.Find("Old Milk")
		if err := customer.Cart().Add(milk, 1); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		rec := httptest.NewRecorder()
		h.Checkout(rec, httptest.NewRequest(http.MethodPost, "/api/checkout", nil))
		if rec.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		h, catalog, customer := newTestHandler()
		tv, _ := catalog.Find("TV")
		if err := customer.Cart().Add(tv, 5); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		// Stock drains between add and checkout.
		tv.DecreaseQuantity(3)

		rec := httptest.NewRecorder()
		h.Checkout(rec, httptest.NewRequest(http.MethodPost, "/api/checkout", nil))
		if rec.Code != http.StatusGone {
			t.Errorf("expected 410, got %d", rec.Code)
		}
	})

	t.Run("insufficient balance", func(t *testing.T) {
		h, catalog, customer := newTestHandler()
		tv, _ := catalog.Find("TV")
		if err := customer.Cart().Add(tv, 2); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		// 2x150 + 10 shipping against a balance of 300
		rec := httptest.NewRecorder()
		h.Checkout(rec, httptest.NewRequest(http.MethodPost, "/api/checkout", nil))
		if rec.Code != http.StatusPaymentRequired {
			t.Errorf("expected 402, got %d", rec.Code)
		}
	})
}
