package domain

import "github.com/shopspring/decimal"

// Customer holds the session's balance and cart. The balance changes only
// when a checkout commits.
type Customer struct {
	name    string
	balance decimal.Decimal
	cart    *Cart
}

func NewCustomer(name string, balance decimal.Decimal) *Customer {
	return &Customer{
		name:    name,
		balance: balance,
		cart:    NewCart(),
	}
}

func (c *Customer) Name() string             { return c.name }
func (c *Customer) Balance() decimal.Decimal { return c.balance }
func (c *Customer) Cart() *Cart              { return c.cart }

// Debit subtracts amount from the balance. The caller must ensure the
// balance covers the amount; checkout validates before debiting.
func (c *Customer) Debit(amount decimal.Decimal) {
	c.balance = c.balance.Sub(amount)
}
