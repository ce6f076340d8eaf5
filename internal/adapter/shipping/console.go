package shipping

import (
	"context"
	"fmt"
	"io"

	"github.com/rl1809/retail-checkout/internal/core/domain"
)

// ConsoleShipper writes the shipment manifest to a writer, one line per
// physical unit. It is the terminal end of a checkout; nothing it does feeds
// back into the transaction.
type ConsoleShipper struct {
	out io.Writer
}

func NewConsoleShipper(out io.Writer) *ConsoleShipper {
	return &ConsoleShipper{out: out}
}

func (s *ConsoleShipper) Ship(ctx context.Context, parcels []domain.Parcel) error {
	if _, err := fmt.Fprintf(s.out, "Shipping %d items:\n", len(parcels)); err != nil {
		return err
	}
	for _, parcel := range parcels {
		if _, err := fmt.Fprintf(s.out, " - %s, %skg\n", parcel.Name, parcel.Weight.String()); err != nil {
			return err
		}
	}
	return nil
}
