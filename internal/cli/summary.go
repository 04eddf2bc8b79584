package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"go-pescados/internal/model"
	"go-pescados/internal/repository"
)

type summaryCmd struct {
	plain bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display stock and profit per product" }
func (*summaryCmd) Usage() string {
	return `pescados summary [-plain]

  Displays purchased and sold weight, stock and profit for every product.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "print raw markdown")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, ok := loadStore(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	defer store.Close()

	summaries, err := repository.NewSummaryRepo(store.Gorm()).SummarizeByProduct(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := SummaryMarkdown(summaries)
	if c.plain {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}

// SummaryMarkdown renders the per-product summary and a totals line as a markdown table.
func SummaryMarkdown(summaries []model.ProductSummary) string {
	var b strings.Builder
	b.WriteString("# Stock and profit\n\n")
	b.WriteString("| Product | Purchased | Sold | Stock | Purchases | Sales | Profit |\n")
	b.WriteString("|---|---:|---:|---:|---:|---:|---:|\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			s.Name,
			model.FormatKg(s.PurchaseWeight),
			model.FormatKg(s.SaleWeight),
			model.FormatKg(s.Stock),
			model.FormatBRL(s.PurchaseValue),
			model.FormatBRL(s.SaleValue),
			model.FormatBRL(s.Profit),
		)
	}
	totals := model.Totals(summaries)
	fmt.Fprintf(&b, "| **Total** | | | %s | %s | %s | **%s** |\n",
		model.FormatKg(totals.Stock),
		model.FormatBRL(totals.PurchaseValue),
		model.FormatBRL(totals.SaleValue),
		model.FormatBRL(totals.Profit),
	)
	return b.String()
}
