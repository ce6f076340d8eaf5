package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Product is one catalog SKU. The perishable and shippable capabilities are
// independent payloads fixed at construction; a product may carry zero, one,
// or both.
type Product struct {
	name     string
	price    decimal.Decimal
	quantity int

	expiry *time.Time       // perishable payload
	weight *decimal.Decimal // shippable payload
}

// ProductOption attaches a capability payload at construction time.
type ProductOption func(*Product)

// WithExpiry marks the product perishable, expiring at the given date.
func WithExpiry(expiry time.Time) ProductOption {
	return func(p *Product) {
		e := expiry
		p.expiry = &e
	}
}

// WithWeight marks the product shippable with the given weight in kilograms.
func WithWeight(weight decimal.Decimal) ProductOption {
	return func(p *Product) {
		w := weight
		p.weight = &w
	}
}

func NewProduct(name string, price decimal.Decimal, quantity int, opts ...ProductOption) *Product {
	p := &Product{
		name:     name,
		price:    price,
		quantity: quantity,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Quantity() int          { return p.quantity }

func (p *Product) IsPerishable() bool { return p.expiry != nil }

// IsExpired reports whether the product's expiry date has passed as of the
// given time, at day granularity: the product is still valid on the expiry
// day itself. Products without the perishable capability never expire.
func (p *Product) IsExpired(asOf time.Time) bool {
	if p.expiry == nil {
		return false
	}
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, p.expiry.Location())
	return p.expiry.Before(day)
}

func (p *Product) IsShippable() bool { return p.weight != nil }

// Parcel returns the manifest entry for one physical unit of this product.
// ok is false for products without the shippable capability.
func (p *Product) Parcel() (Parcel, bool) {
	if p.weight == nil {
		return Parcel{}, false
	}
	return Parcel{Name: p.name, Weight: *p.weight}, true
}

// DecreaseQuantity subtracts n units of stock. The caller must ensure
// 0 <= n <= Quantity(); checkout validates before any decrement.
func (p *Product) DecreaseQuantity(n int) {
	p.quantity -= n
}

// Describe renders a one-line summary for catalog listings.
func (p *Product) Describe() string {
	s := fmt.Sprintf("%s | Price: $%s | Qty: %d", p.name, p.price.StringFixed(2), p.quantity)
	if p.expiry != nil {
		s += " | Expiry: " + p.expiry.Format("2006-01-02")
	}
	if p.weight != nil {
		s += fmt.Sprintf(" | Weight: %skg", p.weight.String())
	}
	return s
}
