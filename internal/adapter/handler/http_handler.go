package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rl1809/retail-checkout/internal/core/domain"
	"github.com/rl1809/retail-checkout/internal/core/service"
	"github.com/rl1809/retail-checkout/internal/metrics"
)

// HTTPHandler exposes the single-customer session over JSON. The catalog,
// customer, and cart live for the life of the process.
type HTTPHandler struct {
	catalog  *domain.Catalog
	customer *domain.Customer
	checkout *service.CheckoutService
	metrics  *metrics.CheckoutMetrics
}

type AddToCartRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ReceiptResponse struct {
	ID               string           `json:"id"`
	Subtotal         string           `json:"subtotal"`
	ShippingFee      string           `json:"shipping_fee"`
	Total            string           `json:"total"`
	RemainingBalance string           `json:"remaining_balance"`
	Manifest         []ParcelResponse `json:"manifest"`
}

type ParcelResponse struct {
	Name     string `json:"name"`
	WeightKG string `json:"weight_kg"`
}

func NewHTTPHandler(catalog *domain.Catalog, customer *domain.Customer, checkout *service.CheckoutService, m *metrics.CheckoutMetrics) *HTTPHandler {
	return &HTTPHandler{
		catalog:  catalog,
		customer: customer,
		checkout: checkout,
		metrics:  m,
	}
}

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"products": h.catalog.List()})
}

func (h *HTTPHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "missing product name"})
		return
	}

	product, ok := h.catalog.Find(req.Name)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "product not found"})
		return
	}

	if err := h.customer.Cart().Add(product, req.Quantity); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid quantity"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"items_in_cart": len(h.customer.Cart().Items())})
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	receipt, err := h.checkout.Checkout(r.Context(), h.customer)
	outcome := outcomeLabel(err)

	if h.metrics != nil {
		h.metrics.Outcomes.WithLabelValues(outcome).Inc()
		h.metrics.LatencyMS.WithLabelValues(outcome).Observe(float64(time.Since(start).Milliseconds()))
	}

	if err != nil {
		writeJSON(w, statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	resp := ReceiptResponse{
		ID:               receipt.ID,
		Subtotal:         receipt.Subtotal.StringFixed(2),
		ShippingFee:      receipt.ShippingFee.StringFixed(2),
		Total:            receipt.Total.StringFixed(2),
		RemainingBalance: receipt.RemainingBalance.StringFixed(2),
		Manifest:         make([]ParcelResponse, 0, len(receipt.Manifest)),
	}
	for _, parcel := range receipt.Manifest {
		resp.Manifest = append(resp.Manifest, ParcelResponse{Name: parcel.Name, WeightKG: parcel.Weight.String()})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrExpiredProduct):
		return http.StatusConflict
	case errors.Is(err, service.ErrInsufficientStock):
		return http.StatusGone
	case errors.Is(err, service.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, service.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, service.ErrExpiredProduct):
		return "expired_product"
	case errors.Is(err, service.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, service.ErrInsufficientBalance):
		return "insufficient_balance"
	default:
		return "error"
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
