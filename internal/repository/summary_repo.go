package repository

import (
	"context"

	"gorm.io/gorm"

	"go-pescados/internal/model"
)

type SummaryRepository interface {
	SummarizeByProduct(ctx context.Context) ([]model.ProductSummary, error)
}

type summaryRepo struct {
	db *gorm.DB
}

func NewSummaryRepo(db *gorm.DB) SummaryRepository {
	return &summaryRepo{db: db}
}

// SummarizeByProduct reports every product, with or without transactions,
// ordered by name then id.
func (r *summaryRepo) SummarizeByProduct(ctx context.Context) ([]model.ProductSummary, error) {
	purchase, sale := string(model.KindPurchase), string(model.KindSale)
	summaries := []model.ProductSummary{}

	rows, err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select(`
			products.id,
			products.name,
			COALESCE(SUM(CASE WHEN transactions.kind = ? THEN transactions.weight_kg ELSE 0 END), 0) AS purchase_weight,
			COALESCE(SUM(CASE WHEN transactions.kind = ? THEN transactions.weight_kg ELSE 0 END), 0) AS sale_weight,
			COALESCE(SUM(CASE WHEN transactions.kind = ? THEN transactions.total_value ELSE 0 END), 0) AS purchase_value,
			COALESCE(SUM(CASE WHEN transactions.kind = ? THEN transactions.total_value ELSE 0 END), 0) AS sale_value
		`, purchase, sale, purchase, sale).
		Joins("LEFT JOIN transactions ON transactions.product_id = products.id").
		Group("products.id, products.name").
		Order("products.name ASC, products.id ASC").
		Rows()
	if err != nil {
		return nil, wrap(err)
	}
	defer rows.Close()

	for rows.Next() {
		var s model.ProductSummary
		if err := rows.Scan(&s.ProductID, &s.Name, &s.PurchaseWeight, &s.SaleWeight, &s.PurchaseValue, &s.SaleValue); err != nil {
			return nil, err
		}
		s.Normalize()
		summaries = append(summaries, s)
	}

	return summaries, wrap(rows.Err())
}
