package model

import "github.com/shopspring/decimal"

// ProductSummary folds every transaction of one product.
type ProductSummary struct {
	ProductID      uint            `json:"productId"`
	Name           string          `json:"name"`
	PurchaseWeight decimal.Decimal `json:"purchaseWeight"`
	SaleWeight     decimal.Decimal `json:"saleWeight"`
	PurchaseValue  decimal.Decimal `json:"purchaseValue"`
	SaleValue      decimal.Decimal `json:"saleValue"`
	Stock          decimal.Decimal `json:"stock"`
	Profit         decimal.Decimal `json:"profit"`
}

// Normalize rounds the raw sums (weights to grams, values to cents) and derives
// Stock and Profit from them.
func (s *ProductSummary) Normalize() {
	s.PurchaseWeight = s.PurchaseWeight.Round(3)
	s.SaleWeight = s.SaleWeight.Round(3)
	s.PurchaseValue = s.PurchaseValue.Round(2)
	s.SaleValue = s.SaleValue.Round(2)
	s.Stock = s.PurchaseWeight.Sub(s.SaleWeight)
	s.Profit = s.SaleValue.Sub(s.PurchaseValue)
}

// LedgerTotals are the dashboard figures across all products.
type LedgerTotals struct {
	Products      int64           `json:"products"`
	Transactions  int64           `json:"transactions"`
	PurchaseValue decimal.Decimal `json:"purchaseValue"`
	SaleValue     decimal.Decimal `json:"saleValue"`
	Profit        decimal.Decimal `json:"profit"`
	Stock         decimal.Decimal `json:"stock"`
}

// Totals adds up per-product summaries. Transaction counts are not known here and stay zero.
func Totals(summaries []ProductSummary) LedgerTotals {
	t := LedgerTotals{
		Products:      int64(len(summaries)),
		PurchaseValue: decimal.Zero,
		SaleValue:     decimal.Zero,
		Stock:         decimal.Zero,
	}
	for _, s := range summaries {
		t.PurchaseValue = t.PurchaseValue.Add(s.PurchaseValue)
		t.SaleValue = t.SaleValue.Add(s.SaleValue)
		t.Stock = t.Stock.Add(s.Stock)
	}
	t.Profit = t.SaleValue.Sub(t.PurchaseValue)
	return t
}
