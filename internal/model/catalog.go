package model

import "github.com/shopspring/decimal"

type catalogEntry struct {
	name      string
	buy, sell int64
}

// Starter catalog, prices in BRL per kg.
var defaultCatalog = []catalogEntry{
	{"Camarao Regional", 25, 40},
	{"Camarao Rosa", 35, 55},
	{"Pescada Amarela", 18, 30},
	{"Dourada", 20, 35},
	{"Filhote", 28, 45},
	{"Pescada Go", 15, 28},
	{"Pata de Caranguejo", 30, 50},
	{"Massa de Caranguejo", 40, 65},
}

// DefaultProducts returns a fresh copy of the starter catalog inserted into an empty store.
func DefaultProducts() []Product {
	products := make([]Product, 0, len(defaultCatalog))
	for _, e := range defaultCatalog {
		products = append(products, Product{
			Name:             e.name,
			DefaultBuyPrice:  decimal.NewFromInt(e.buy),
			DefaultSellPrice: decimal.NewFromInt(e.sell),
		})
	}
	return products
}
