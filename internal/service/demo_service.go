package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"go-pescados/internal/model"
	"go-pescados/internal/repository"
)

// DemoGenerator fills an empty ledger with plausible fictitious trading history.
type DemoGenerator struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	rnd             *rand.Rand
	today           model.Date
}

func NewDemoGenerator(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, seed uint64) *DemoGenerator {
	return &DemoGenerator{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		rnd:             rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		today:           model.Today(),
	}
}

// Generate seeds the catalog if needed and records 1 to 4 transactions per day
// from today-days through today. About 60% are purchases. Weights fall between
// 2 and 25 kg and prices within 10% of the product default.
func (g *DemoGenerator) Generate(ctx context.Context, days int) (int, error) {
	if days < 0 {
		return 0, fmt.Errorf("%w: days must not be negative", ErrValidation)
	}
	if _, err := g.productRepo.SeedDefaults(ctx); err != nil {
		return 0, err
	}
	n, err := g.transactionRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, ErrLedgerNotEmpty
	}
	products, err := g.productRepo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(products) == 0 {
		return 0, nil
	}

	var txs []model.Transaction
	for back := days; back >= 0; back-- {
		date := g.today.Add(-back)
		for i := 1 + g.rnd.IntN(4); i > 0; i-- {
			txs = append(txs, g.transaction(products[g.rnd.IntN(len(products))], date))
		}
	}
	if err := g.transactionRepo.CreateBatch(ctx, txs); err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{"days": days, "transactions": len(txs)}).Info("Demo ledger generated")
	return len(txs), nil
}

func (g *DemoGenerator) transaction(p model.Product, date model.Date) model.Transaction {
	kind := model.KindSale
	if g.rnd.Float64() < 0.6 {
		kind = model.KindPurchase
	}
	weight := decimal.NewFromFloat(2 + g.rnd.Float64()*23).Round(1)
	variation := decimal.NewFromFloat(0.9 + g.rnd.Float64()*0.2)
	return model.Transaction{
		ProductID:  p.ID,
		Kind:       kind,
		WeightKg:   weight,
		PricePerKg: p.DefaultPrice(kind).Mul(variation).Round(2),
		Date:       date,
	}
}
