package port

import (
	"context"

	"github.com/rl1809/retail-checkout/internal/core/domain"
)

type ShipmentSink interface {
	// Ship accepts one parcel per physical unit, in cart order. The outcome
	// never feeds back into the checkout result.
	Ship(ctx context.Context, parcels []domain.Parcel) error
}
