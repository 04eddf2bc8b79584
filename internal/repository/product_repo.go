package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-pescados/internal/model"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	SeedDefaults(ctx context.Context) (int, error)
	Dump(ctx context.Context) ([]model.Product, error)
	Import(tx *gorm.DB, products []model.Product) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

var productOrder = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Name: "name"}},
	{Column: clause.Column{Name: "id"}},
}}

func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).Order(productOrder).Find(&products).Error
	return products, wrap(err)
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, wrap(err)
	}
	return &product, nil
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	product.ID = 0
	return wrap(r.db.WithContext(ctx).Create(product).Error)
}

// Update replaces name and both prices. Updating a missing id changes nothing.
func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	return wrap(r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":               product.Name,
			"default_buy_price":  product.DefaultBuyPrice,
			"default_sell_price": product.DefaultSellPrice,
		}).Error)
}

// Delete removes the product only. Its transactions stay in the ledger.
func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return wrap(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{}).Error)
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error
	return n, wrap(err)
}

// SeedDefaults inserts the starter catalog when there are no products at all.
// It returns how many products were inserted.
func (r *productRepo) SeedDefaults(ctx context.Context) (int, error) {
	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Product{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		defaults := model.DefaultProducts()
		if err := tx.CreateInBatches(&defaults, batchSize).Error; err != nil {
			return err
		}
		inserted = len(defaults)
		return nil
	})
	if err != nil {
		return 0, wrap(err)
	}
	return inserted, nil
}

// Dump returns every product ordered by id.
func (r *productRepo) Dump(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, wrap(err)
}

// Import inserts products with their ids as given. tx is usually a transaction.
func (r *productRepo) Import(tx *gorm.DB, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	return wrap(tx.CreateInBatches(&products, batchSize).Error)
}
