package domain

import "errors"

// ErrInvalidAddition is returned by Cart.Add when the requested quantity is
// non-positive or exceeds the stock on hand at the time of the call.
var ErrInvalidAddition = errors.New("invalid cart addition")

// LineItem pairs a catalog-owned product with a requested quantity. The cart
// never copies or owns the product.
type LineItem struct {
	Product  *Product
	Quantity int
}

// Cart accumulates line items in insertion order. Adding does not reserve
// stock; the quantity check here is advisory and checkout re-validates
// against live quantities.
type Cart struct {
	items []LineItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add appends a line item for quantity units of p. It rejects quantities
// that are non-positive or exceed the current stock, leaving the cart
// unchanged. Two additions of the same product may jointly request more
// than is on hand; that is caught at checkout.
func (c *Cart) Add(p *Product, quantity int) error {
	if quantity <= 0 || quantity > p.Quantity() {
		return ErrInvalidAddition
	}
	c.items = append(c.items, LineItem{Product: p, Quantity: quantity})
	return nil
}

// Items returns the line items in insertion order. Callers must not modify
// the returned slice.
func (c *Cart) Items() []LineItem {
	return c.items
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Clear() {
	c.items = nil
}
