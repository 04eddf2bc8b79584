package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-pescados/internal/model"
)

type TransactionRepository interface {
	FindAll(ctx context.Context) ([]model.TransactionView, error)
	FindByID(ctx context.Context, id uint) (*model.TransactionView, error)
	Create(ctx context.Context, transaction *model.Transaction) error
	CreateBatch(ctx context.Context, transactions []model.Transaction) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	Dump(ctx context.Context) ([]model.Transaction, error)
	Import(tx *gorm.DB, transactions []model.Transaction) error
	GetStockMovement(ctx context.Context, from, to model.Date) ([]StockMovementData, error)
}

// StockMovementData is one day of the stock movement chart.
type StockMovementData struct {
	Date     model.Date      `json:"date"`
	Inbound  decimal.Decimal `json:"inbound"`
	Outbound decimal.Decimal `json:"outbound"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

var transactionOrder = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Table: "transactions", Name: "date"}, Desc: true},
	{Column: clause.Column{Table: "transactions", Name: "id"}, Desc: true},
}}

// views joins the current product name. A deleted product leaves it NULL.
func (r *transactionRepo) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transactions").
		Select("transactions.*, products.name AS product_name").
		Joins("LEFT JOIN products ON products.id = transactions.product_id")
}

func (r *transactionRepo) FindAll(ctx context.Context) ([]model.TransactionView, error) {
	views := []model.TransactionView{}
	err := r.views(ctx).Order(transactionOrder).Find(&views).Error
	return views, wrap(err)
}

func (r *transactionRepo) FindByID(ctx context.Context, id uint) (*model.TransactionView, error) {
	var views []model.TransactionView
	if err := r.views(ctx).Where("transactions.id = ?", id).Limit(1).Find(&views).Error; err != nil {
		return nil, wrap(err)
	}
	if len(views) == 0 {
		return nil, ErrNotFound
	}
	return &views[0], nil
}

// Create assigns the id and computes TotalValue, ignoring any value the caller set.
func (r *transactionRepo) Create(ctx context.Context, transaction *model.Transaction) error {
	transaction.ID = 0
	transaction.ComputeTotal()
	return wrap(r.db.WithContext(ctx).Create(transaction).Error)
}

// CreateBatch inserts all transactions or none of them.
func (r *transactionRepo) CreateBatch(ctx context.Context, transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	for i := range transactions {
		transactions[i].ID = 0
		transactions[i].ComputeTotal()
	}
	return wrap(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&transactions, batchSize).Error
	}))
}

func (r *transactionRepo) Delete(ctx context.Context, id uint) error {
	return wrap(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Transaction{}).Error)
}

func (r *transactionRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).Count(&n).Error
	return n, wrap(err)
}

// Dump returns every transaction ordered by id.
func (r *transactionRepo) Dump(ctx context.Context) ([]model.Transaction, error) {
	transactions := []model.Transaction{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&transactions).Error
	return transactions, wrap(err)
}

// Import writes transactions exactly as given, ids and totals included.
func (r *transactionRepo) Import(tx *gorm.DB, transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	return wrap(tx.CreateInBatches(&transactions, batchSize).Error)
}

// GetStockMovement sums purchased (inbound) and sold (outbound) kilograms per day, both ends inclusive.
func (r *transactionRepo) GetStockMovement(ctx context.Context, from, to model.Date) ([]StockMovementData, error) {
	results := []StockMovementData{}

	rows, err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select(`
			date,
			COALESCE(SUM(CASE WHEN kind = ? THEN weight_kg ELSE 0 END), 0) AS inbound,
			COALESCE(SUM(CASE WHEN kind = ? THEN weight_kg ELSE 0 END), 0) AS outbound
		`, string(model.KindPurchase), string(model.KindSale)).
		Where("date BETWEEN ? AND ?", from, to).
		Group("date").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, wrap(err)
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		data.Inbound = data.Inbound.Round(3)
		data.Outbound = data.Outbound.Round(3)
		results = append(results, data)
	}

	return results, wrap(rows.Err())
}
