package migration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pescados/internal/model"
	"go-pescados/internal/repository"
	"go-pescados/pkg/database"
)

func openStore(t *testing.T, name string) *database.Store {
	t.Helper()
	store, err := database.Connect(database.NewSQLite("file:"+name+"?mode=memory&cache=shared"), database.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, repository.EnsureSchema(context.Background(), store.Gorm()))
	return store
}

func fillSource(t *testing.T, store *database.Store) {
	t.Helper()
	ctx := context.Background()
	products := repository.NewProductRepo(store.Gorm())
	_, err := products.SeedDefaults(ctx)
	require.NoError(t, err)
	// leave a gap in the ids
	require.NoError(t, products.Delete(ctx, 2))

	txs := repository.NewTransactionRepo(store.Gorm())
	day := model.NewDate(2024, time.April, 10)
	require.NoError(t, txs.CreateBatch(ctx, []model.Transaction{
		{ProductID: 1, Kind: model.KindPurchase, WeightKg: decimal.NewFromInt(10), PricePerKg: decimal.NewFromInt(25), Date: day},
		{ProductID: 1, Kind: model.KindSale, WeightKg: decimal.NewFromInt(4), PricePerKg: decimal.NewFromInt(40), Date: day.Add(1)},
		{ProductID: 2, Kind: model.KindPurchase, WeightKg: decimal.RequireFromString("3.5"), PricePerKg: decimal.NewFromInt(35), Date: day.Add(2)},
	}))
	require.NoError(t, txs.Delete(ctx, 1))
}

func TestMigratorCopiesEverything(t *testing.T) {
	ctx := context.Background()
	source := openStore(t, "migrate_src")
	target := openStore(t, "migrate_dst")
	fillSource(t, source)

	report, err := New(source, target).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, report.Products)
	assert.Equal(t, 2, report.Transactions)

	srcProducts, err := repository.NewProductRepo(source.Gorm()).Dump(ctx)
	require.NoError(t, err)
	dstProducts, err := repository.NewProductRepo(target.Gorm()).Dump(ctx)
	require.NoError(t, err)
	require.Equal(t, len(srcProducts), len(dstProducts))
	for i := range srcProducts {
		assert.Equal(t, srcProducts[i].ID, dstProducts[i].ID)
		assert.Equal(t, srcProducts[i].Name, dstProducts[i].Name)
	}

	srcTxs, err := repository.NewTransactionRepo(source.Gorm()).Dump(ctx)
	require.NoError(t, err)
	dstTxs, err := repository.NewTransactionRepo(target.Gorm()).Dump(ctx)
	require.NoError(t, err)
	require.Len(t, dstTxs, 2)
	for i := range srcTxs {
		assert.Equal(t, srcTxs[i].ID, dstTxs[i].ID)
		assert.Equal(t, srcTxs[i].ProductID, dstTxs[i].ProductID)
		assert.True(t, srcTxs[i].TotalValue.Equal(dstTxs[i].TotalValue))
		assert.Equal(t, srcTxs[i].Date, dstTxs[i].Date)
	}

	// product 2 is gone but its transaction migrated with the same product id
	views, err := repository.NewTransactionRepo(target.Gorm()).FindAll(ctx)
	require.NoError(t, err)
	assert.Nil(t, views[0].ProductName)

	next := model.Product{Name: "Tambaqui", DefaultBuyPrice: decimal.NewFromInt(1), DefaultSellPrice: decimal.NewFromInt(2)}
	require.NoError(t, repository.NewProductRepo(target.Gorm()).Create(ctx, &next))
	assert.Equal(t, uint(9), next.ID)
}

func TestMigratorRefusesNonEmptyTarget(t *testing.T) {
	ctx := context.Background()
	source := openStore(t, "refuse_src")
	target := openStore(t, "refuse_dst")
	fillSource(t, source)

	_, err := New(source, target).Run(ctx)
	require.NoError(t, err)

	_, err = New(source, target).Run(ctx)
	require.ErrorIs(t, err, ErrDuplicateImport)

	n, err := repository.NewTransactionRepo(target.Gorm()).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMigratorCreatesTargetSchema(t *testing.T) {
	ctx := context.Background()
	source := openStore(t, "schema_src")
	target, err := database.Connect(database.NewSQLite("file:schema_dst?mode=memory&cache=shared"), database.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = target.Close() })

	report, err := New(source, target).Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Products)
	assert.True(t, target.Gorm().Migrator().HasTable("transactions"))
}
