package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNegative is returned when a negative amount is turned into Money.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("amount")

// Money is a non-negative currency amount. Prices, order totals, wallet
// balances and refunds are all Money. The zero value is zero.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s is below zero", ErrMoneyIsNegative, amount.String())
	}
	return Money{amount: amount}, nil
}

// MoneyFromInt is a shorthand for whole-unit amounts such as bonuses.
func MoneyFromInt(units int64) Money {
	if units < 0 {
		units = 0
	}
	return Money{amount: decimal.NewFromInt(units)}
}

func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times multiplies by a line quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}
