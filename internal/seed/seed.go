// Package seed supplies the demo catalog and customer. Seeding is an
// external concern; the core never depends on this package.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/retail-checkout/internal/core/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Catalog returns the default product set.
func Catalog() *domain.Catalog {
	catalog := domain.NewCatalog()
	catalog.AddOrReplace(domain.NewProduct("Cheese", decimal.NewFromFloat(10.0), 10,
		domain.WithExpiry(date(2025, time.December, 1)),
		domain.WithWeight(decimal.NewFromFloat(2.0)),
	))
	catalog.AddOrReplace(domain.NewProduct("TV", decimal.NewFromFloat(150.0), 5,
		domain.WithWeight(decimal.NewFromFloat(8.0)),
	))
	catalog.AddOrReplace(domain.NewProduct("Biscuit", decimal.NewFromFloat(2.0), 50,
		domain.WithExpiry(date(2024, time.December, 31)),
	))
	catalog.AddOrReplace(domain.NewProduct("Mobile Scratch Card", decimal.NewFromFloat(5.0), 100))
	return catalog
}

// Customer returns the default session customer.
func Customer() *domain.Customer {
	return domain.NewCustomer("Amir", decimal.NewFromFloat(300.0))
}
