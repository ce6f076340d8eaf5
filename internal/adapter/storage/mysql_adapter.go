package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rl1809/retail-checkout/internal/core/domain"
)

// MySQLAdapter archives committed receipts. A receipt and its manifest rows
// are written in one transaction so the archive never holds a partial
// checkout.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO receipts (id, customer_name, subtotal, shipping_fee, total, remaining_balance, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		receipt.ID, receipt.CustomerName,
		receipt.Subtotal.StringFixed(2), receipt.ShippingFee.StringFixed(2),
		receipt.Total.StringFixed(2), receipt.RemainingBalance.StringFixed(2),
		receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}

	for i, parcel := range receipt.Manifest {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO receipt_parcels (receipt_id, position, product_name, weight_kg)
			VALUES (?, ?, ?, ?)`,
			receipt.ID, i, parcel.Name, parcel.Weight.String(),
		)
		if err != nil {
			return fmt.Errorf("insert parcel %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// GetReceipt reads one archived receipt without its manifest. Returns nil
// when the id is unknown.
func (m *MySQLAdapter) GetReceipt(ctx context.Context, id string) (*domain.Receipt, error) {
	var receipt domain.Receipt
	var subtotal, shipping, total, remaining string
	err := m.db.QueryRowContext(ctx, `
		SELECT id, customer_name, subtotal, shipping_fee, total, remaining_balance, created_at
		FROM receipts WHERE id = ?`, id,
	).Scan(&receipt.ID, &receipt.CustomerName, &subtotal, &shipping, &total, &remaining, &receipt.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query receipt: %w", err)
	}

	if receipt.Subtotal, err = parseAmount(subtotal); err != nil {
		return nil, err
	}
	if receipt.ShippingFee, err = parseAmount(shipping); err != nil {
		return nil, err
	}
	if receipt.Total, err = parseAmount(total); err != nil {
		return nil, err
	}
	if receipt.RemainingBalance, err = parseAmount(remaining); err != nil {
		return nil, err
	}

	return &receipt, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}
