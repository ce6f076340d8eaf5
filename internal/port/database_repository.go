package port

import (
	"context"

	"github.com/rl1809/retail-checkout/internal/core/domain"
)

type ReceiptArchive interface {
	// SaveReceipt persists a committed receipt and its manifest atomically.
	SaveReceipt(ctx context.Context, receipt domain.Receipt) error
}
