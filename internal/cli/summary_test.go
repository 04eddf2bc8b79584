package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"go-pescados/internal/model"
)

func TestSummaryMarkdown(t *testing.T) {
	s := model.ProductSummary{
		Name:           "Dourada",
		PurchaseWeight: decimal.NewFromInt(10),
		SaleWeight:     decimal.NewFromInt(4),
		PurchaseValue:  decimal.NewFromInt(250),
		SaleValue:      decimal.NewFromInt(160),
	}
	s.Normalize()
	empty := model.ProductSummary{Name: "Filhote"}
	empty.Normalize()

	md := SummaryMarkdown([]model.ProductSummary{s, empty})
	lines := strings.Split(strings.TrimSpace(md), "\n")
	assert.Len(t, lines, 7)
	assert.Contains(t, lines[4], "| Dourada | 10.00 kg | 4.00 kg | 6.00 kg |")
	assert.Contains(t, lines[4], "250,00")
	assert.Contains(t, lines[4], "90,00")
	assert.Contains(t, lines[5], "| Filhote | 0.00 kg |")
	assert.Contains(t, lines[6], "**Total**")
}

func TestCommandsAreRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range Commands {
		names[c.Name()] = true
	}
	assert.Equal(t, map[string]bool{"init": true, "demo": true, "summary": true, "migrate": true}, names)
}
