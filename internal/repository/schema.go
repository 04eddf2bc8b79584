package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-pescados/internal/model"
)

// EnsureSchema creates the ledger tables that do not exist yet. Existing tables
// are left untouched, so it is safe to call on every start.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	migrator := db.WithContext(ctx).Migrator()
	for _, m := range []interface{}{&model.Product{}, &model.Transaction{}} {
		if migrator.HasTable(m) {
			continue
		}
		if err := migrator.CreateTable(m); err != nil {
			return fmt.Errorf("create table for %T: %w", m, wrap(err))
		}
		logrus.Infof("Created table for %T", m)
	}
	return nil
}
