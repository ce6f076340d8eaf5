package port

import "context"

type StockMirror interface {
	// SetStock publishes the on-hand quantity for a product.
	SetStock(ctx context.Context, name string, quantity int) error

	// DecrementStock atomically decreases the mirrored quantity, returning
	// false if the mirror has no entry or too little stock to apply it.
	DecrementStock(ctx context.Context, name string, quantity int) (bool, error)
}
