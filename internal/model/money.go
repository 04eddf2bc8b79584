package model

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency of every price and value in the ledger.
const Currency = money.BRL

// FormatBRL renders an amount for display, e.g. "R$1.234,56".
func FormatBRL(amount decimal.Decimal) string {
	cents := amount.Round(2).Shift(2).IntPart()
	return money.New(cents, Currency).Display()
}

// FormatKg renders a weight with two decimals, e.g. "12.50 kg".
func FormatKg(weight decimal.Decimal) string {
	return weight.StringFixed(2) + " kg"
}
