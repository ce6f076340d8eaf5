package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Parcel is one physical unit handed to the shipment sink.
type Parcel struct {
	Name   string
	Weight decimal.Decimal
}

// Receipt summarizes a committed checkout.
type Receipt struct {
	ID               string
	CustomerName     string
	Subtotal         decimal.Decimal
	ShippingFee      decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
	Manifest         []Parcel
	CreatedAt        time.Time
}
