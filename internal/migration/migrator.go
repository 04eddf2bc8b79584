// Package migration copies a whole ledger from one store into another,
// typically from the embedded SQLite file into PostgreSQL.
package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-pescados/internal/model"
	"go-pescados/internal/repository"
	"go-pescados/pkg/database"
)

// ErrDuplicateImport is returned when the target already holds products or transactions.
var ErrDuplicateImport = errors.New("target already contains data")

type Report struct {
	RunID        uuid.UUID `json:"runId"`
	Products     int       `json:"products"`
	Transactions int       `json:"transactions"`
}

type Migrator struct {
	source *database.Store
	target *database.Store
}

func New(source, target *database.Store) *Migrator {
	return &Migrator{source: source, target: target}
}

// Run copies every product and transaction with its original id. The target is
// written in a single transaction, so a failed run leaves it unchanged.
func (m *Migrator) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.New()}
	log := logrus.WithFields(logrus.Fields{
		"run_id": report.RunID,
		"source": m.source.Dialect().Describe(),
		"target": m.target.Dialect().Describe(),
	})
	log.Info("Migration started")

	srcProducts := repository.NewProductRepo(m.source.Gorm())
	srcTransactions := repository.NewTransactionRepo(m.source.Gorm())

	products, err := srcProducts.Dump(ctx)
	if err != nil {
		return nil, fmt.Errorf("read source products: %w", err)
	}
	transactions, err := srcTransactions.Dump(ctx)
	if err != nil {
		return nil, fmt.Errorf("read source transactions: %w", err)
	}

	if err := repository.EnsureSchema(ctx, m.target.Gorm()); err != nil {
		return nil, fmt.Errorf("prepare target schema: %w", err)
	}

	err = m.target.Conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureEmpty(tx); err != nil {
			return err
		}

		dstProducts := repository.NewProductRepo(tx)
		dstTransactions := repository.NewTransactionRepo(tx)
		if err := dstProducts.Import(tx, products); err != nil {
			return fmt.Errorf("import products: %w", err)
		}
		if err := dstTransactions.Import(tx, transactions); err != nil {
			return fmt.Errorf("import transactions: %w", err)
		}

		for _, table := range []string{model.Product{}.TableName(), model.Transaction{}.TableName()} {
			if err := m.target.Dialect().ResyncSequence(tx, table); err != nil {
				return fmt.Errorf("resync %s id sequence: %w", table, database.Classify(err))
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Migration aborted")
		return nil, err
	}

	report.Products = len(products)
	report.Transactions = len(transactions)
	log.WithFields(logrus.Fields{
		"products":     report.Products,
		"transactions": report.Transactions,
	}).Info("Migration finished")
	return report, nil
}

func ensureEmpty(tx *gorm.DB) error {
	for _, m := range []interface{}{&model.Product{}, &model.Transaction{}} {
		var n int64
		if err := tx.Model(m).Count(&n).Error; err != nil {
			return database.Classify(err)
		}
		if n > 0 {
			return fmt.Errorf("%w: %d rows in %T", ErrDuplicateImport, n, m)
		}
	}
	return nil
}
