package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount int64, unit currency.Unit) Money {
	return Money{
		Amount:   decimal.NewFromInt(amount),
		Currency: unit,
	}
}

func (m Money) Times(quantity int32) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt32(quantity)),
		Currency: m.Currency,
	}
}

// Plus keeps the receiver's currency; all prices of one catalog share a unit.
func (m Money) Plus(other Money) Money {
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.String())
}
