package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 5), d)
	assert.Equal(t, "2024-03-05", d.String())

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-05"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)
}

func TestDateParseTruncatesTimestamp(t *testing.T) {
	d, err := ParseDate("2024-03-05T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", d.String())

	_, err = ParseDate("05/03/2024")
	assert.Error(t, err)
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-31", d.String())

	require.NoError(t, d.Scan([]byte("2023-12-01")))
	assert.Equal(t, "2023-12-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateAdd(t *testing.T) {
	d := NewDate(2024, time.February, 28)
	assert.Equal(t, "2024-02-29", d.Add(1).String())
	assert.Equal(t, "2024-03-01", d.Add(2).String())
	assert.True(t, d.Before(d.Add(1)))
	assert.True(t, d.Add(-1).Before(d))
}

func TestKind(t *testing.T) {
	assert.True(t, KindPurchase.Valid())
	assert.True(t, KindSale.Valid())
	assert.False(t, Kind("compra").Valid())

	var k Kind
	require.NoError(t, k.Scan([]byte("sale")))
	assert.Equal(t, KindSale, k)
}

func TestComputeTotal(t *testing.T) {
	tx := Transaction{
		WeightKg:   decimal.RequireFromString("2.345"),
		PricePerKg: decimal.RequireFromString("10.10"),
	}
	tx.ComputeTotal()
	assert.Equal(t, "23.68", tx.TotalValue.StringFixed(2))
}

func TestSummaryNormalize(t *testing.T) {
	s := ProductSummary{
		PurchaseWeight: decimal.NewFromInt(10),
		SaleWeight:     decimal.NewFromInt(4),
		PurchaseValue:  decimal.NewFromInt(250),
		SaleValue:      decimal.NewFromInt(160),
	}
	s.Normalize()
	assert.True(t, s.Stock.Equal(decimal.NewFromInt(6)))
	assert.True(t, s.Profit.Equal(decimal.NewFromInt(-90)))
}

func TestTotals(t *testing.T) {
	summaries := []ProductSummary{
		{PurchaseValue: decimal.NewFromInt(100), SaleValue: decimal.NewFromInt(150), Stock: decimal.NewFromInt(2)},
		{PurchaseValue: decimal.NewFromInt(50), SaleValue: decimal.Zero, Stock: decimal.NewFromInt(3)},
	}
	totals := Totals(summaries)
	assert.Equal(t, int64(2), totals.Products)
	assert.True(t, totals.Profit.Equal(decimal.Zero))
	assert.True(t, totals.Stock.Equal(decimal.NewFromInt(5)))

	empty := Totals(nil)
	assert.True(t, empty.Profit.IsZero())
}

func TestDefaultProducts(t *testing.T) {
	products := DefaultProducts()
	require.Len(t, products, 8)
	assert.Equal(t, "Camarao Regional", products[0].Name)
	assert.True(t, products[0].DefaultBuyPrice.Equal(decimal.NewFromInt(25)))
	assert.True(t, products[7].DefaultSellPrice.Equal(decimal.NewFromInt(65)))

	products[0].Name = "changed"
	assert.Equal(t, "Camarao Regional", DefaultProducts()[0].Name)
}

func TestDefaultPrice(t *testing.T) {
	p := DefaultProducts()[1]
	assert.True(t, p.DefaultPrice(KindPurchase).Equal(decimal.NewFromInt(35)))
	assert.True(t, p.DefaultPrice(KindSale).Equal(decimal.NewFromInt(55)))
}

func TestFormatBRL(t *testing.T) {
	assert.Contains(t, FormatBRL(decimal.RequireFromString("1234.56")), "1.234,56")
	assert.Contains(t, FormatBRL(decimal.RequireFromString("-250")), "250,00")
	assert.Equal(t, "12.50 kg", FormatKg(decimal.RequireFromString("12.5")))
}
