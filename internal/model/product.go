package model

import "github.com/shopspring/decimal"

// Product is a fish or seafood item traded by the kilogram.
type Product struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Name             string          `gorm:"type:text;not null" json:"name"`
	DefaultBuyPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_products_buy_price,default_buy_price >= 0" json:"defaultBuyPrice"`
	DefaultSellPrice decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_products_sell_price,default_sell_price >= 0" json:"defaultSellPrice"`
}

func (Product) TableName() string {
	return "products"
}

// DefaultPrice returns the per-kg price a new transaction of the given kind starts from.
func (p Product) DefaultPrice(kind Kind) decimal.Decimal {
	if kind == KindSale {
		return p.DefaultSellPrice
	}
	return p.DefaultBuyPrice
}
