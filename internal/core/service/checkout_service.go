package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rl1809/retail-checkout/internal/core/domain"
	"github.com/rl1809/retail-checkout/internal/port"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrExpiredProduct      = errors.New("product is expired")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// ShippingRatePerUnit is the flat fee charged for every shippable unit.
var ShippingRatePerUnit = decimal.NewFromInt(5)

type CheckoutService struct {
	shipper port.ShipmentSink
	archive port.ReceiptArchive
	mirror  port.StockMirror
	logger  *zap.Logger
	now     func() time.Time
}

// NewCheckoutService wires the checkout transaction to its collaborators.
// archive and mirror are optional and may be nil; the shipment sink is
// required.
func NewCheckoutService(shipper port.ShipmentSink, archive port.ReceiptArchive, mirror port.StockMirror, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		shipper: shipper,
		archive: archive,
		mirror:  mirror,
		logger:  logger,
		now:     time.Now,
	}
}

// Checkout validates the customer's cart, prices it, and on full success
// debits the balance, decrements inventory, ships the manifest, and clears
// the cart. Every failure is a pure validation rejection: no quantity or
// balance changes until all checks have passed.
func (s *CheckoutService) Checkout(ctx context.Context, customer *domain.Customer) (*domain.Receipt, error) {
	cart := customer.Cart()
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	today := s.now()
	subtotal := decimal.Zero
	shippingFee := decimal.Zero
	var manifest []domain.Parcel

	// Stock checks aggregate across line items so that two entries for the
	// same product cannot jointly oversell at commit time.
	requested := make(map[*domain.Product]int)

	for _, item := range cart.Items() {
		p := item.Product

		if p.IsExpired(today) {
			return nil, fmt.Errorf("product %q: %w", p.Name(), ErrExpiredProduct)
		}
		requested[p] += item.Quantity
		if requested[p] > p.Quantity() {
			return nil, fmt.Errorf("product %q: %w", p.Name(), ErrInsufficientStock)
		}

		qty := decimal.NewFromInt(int64(item.Quantity))
		subtotal = subtotal.Add(p.Price().Mul(qty))

		if parcel, ok := p.Parcel(); ok {
			shippingFee = shippingFee.Add(ShippingRatePerUnit.Mul(qty))
			for i := 0; i < item.Quantity; i++ {
				manifest = append(manifest, parcel)
			}
		}
	}

	total := subtotal.Add(shippingFee)
	if total.GreaterThan(customer.Balance()) {
		return nil, ErrInsufficientBalance
	}

	// Commit. All validation is done; nothing below can fail the checkout.
	for _, item := range cart.Items() {
		item.Product.DecreaseQuantity(item.Quantity)
	}
	customer.Debit(total)

	receipt := &domain.Receipt{
		ID:               uuid.NewString(),
		CustomerName:     customer.Name(),
		Subtotal:         subtotal,
		ShippingFee:      shippingFee,
		Total:            total,
		RemainingBalance: customer.Balance(),
		Manifest:         manifest,
		CreatedAt:        today,
	}

	if len(manifest) > 0 {
		if err := s.shipper.Ship(ctx, manifest); err != nil {
			s.logger.Warn("shipment sink failed", zap.String("receipt_id", receipt.ID), zap.Error(err))
		}
	}

	s.archiveReceipt(ctx, receipt)
	s.mirrorStock(ctx, cart.Items())

	cart.Clear()

	s.logger.Info("checkout committed",
		zap.String("receipt_id", receipt.ID),
		zap.String("customer", customer.Name()),
		zap.String("total", total.StringFixed(2)),
		zap.Int("parcels", len(manifest)),
	)

	return receipt, nil
}

func (s *CheckoutService) archiveReceipt(ctx context.Context, receipt *domain.Receipt) {
	if s.archive == nil {
		return
	}
	if err := s.archive.SaveReceipt(ctx, *receipt); err != nil {
		s.logger.Warn("receipt archive failed", zap.String("receipt_id", receipt.ID), zap.Error(err))
	}
}

func (s *CheckoutService) mirrorStock(ctx context.Context, items []domain.LineItem) {
	if s.mirror == nil {
		return
	}
	for _, item := range items {
		applied, err := s.mirror.DecrementStock(ctx, item.Product.Name(), item.Quantity)
		if err != nil {
			s.logger.Warn("stock mirror failed", zap.String("product", item.Product.Name()), zap.Error(err))
			continue
		}
		if !applied {
			s.logger.Warn("stock mirror out of sync", zap.String("product", item.Product.Name()))
		}
	}
}
