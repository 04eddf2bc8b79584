package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"go-pescados/internal/model"
	"go-pescados/internal/repository"
	"go-pescados/internal/ws"
)

// ProductInput is the writable part of a product.
type ProductInput struct {
	Name             string          `json:"name" validate:"notblank"`
	DefaultBuyPrice  decimal.Decimal `json:"defaultBuyPrice" validate:"decimal_gte0"`
	DefaultSellPrice decimal.Decimal `json:"defaultSellPrice" validate:"decimal_gte0"`
}

// TransactionInput records a purchase or sale. A missing price falls back to the
// product's default price for that kind. Any totalValue sent by the client is ignored.
type TransactionInput struct {
	ProductID  uint             `json:"productId" validate:"required"`
	Kind       model.Kind       `json:"kind" validate:"required,oneof=purchase sale"`
	WeightKg   decimal.Decimal  `json:"weightKg" validate:"decimal_gt0"`
	PricePerKg *decimal.Decimal `json:"pricePerKg" validate:"omitempty,decimal_gte0"`
	Date       model.Date       `json:"date" validate:"date_required"`
}

type InventoryService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint, in ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	ListTransactions(ctx context.Context) ([]model.TransactionView, error)
	GetTransaction(ctx context.Context, id uint) (*model.TransactionView, error)
	RecordTransaction(ctx context.Context, in TransactionInput) (*model.TransactionView, error)
	DeleteTransaction(ctx context.Context, id uint) error
	Summarize(ctx context.Context) ([]model.ProductSummary, error)
}

type inventoryService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	summaryRepo     repository.SummaryRepository
	wsHub           *ws.Hub
}

// NewInventoryService wires the ledger operations. hub may be nil.
func NewInventoryService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, sRepo repository.SummaryRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		summaryRepo:     sRepo,
		wsHub:           hub,
	}
}

func (s *inventoryService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *inventoryService) CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	product := &model.Product{
		Name:             strings.TrimSpace(in.Name),
		DefaultBuyPrice:  in.DefaultBuyPrice,
		DefaultSellPrice: in.DefaultSellPrice,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.ActionProductCreated, fmt.Sprintf("Product '%s' created", product.Name), product)
	return product, nil
}

// UpdateProduct replaces name and prices. The store ignores unknown ids, so a
// missing product is reported only after the write.
func (s *inventoryService) UpdateProduct(ctx context.Context, id uint, in ProductInput) (*model.Product, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	product := &model.Product{
		ID:               id,
		Name:             strings.TrimSpace(in.Name),
		DefaultBuyPrice:  in.DefaultBuyPrice,
		DefaultSellPrice: in.DefaultSellPrice,
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	updated, err := s.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.ActionProductUpdated, fmt.Sprintf("Product '%s' updated", updated.Name), updated)
	return updated, nil
}

// DeleteProduct removes the product and keeps its transactions.
func (s *inventoryService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.wsHub.Publish(ws.ActionProductDeleted, fmt.Sprintf("Product #%d deleted", id), map[string]uint{"id": id})
	return nil
}

func (s *inventoryService) ListTransactions(ctx context.Context) ([]model.TransactionView, error) {
	return s.transactionRepo.FindAll(ctx)
}

func (s *inventoryService) GetTransaction(ctx context.Context, id uint) (*model.TransactionView, error) {
	return s.transactionRepo.FindByID(ctx, id)
}

func (s *inventoryService) RecordTransaction(ctx context.Context, in TransactionInput) (*model.TransactionView, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrProductNotFound, in.ProductID)
	}
	if err != nil {
		return nil, err
	}

	price := product.DefaultPrice(in.Kind)
	if in.PricePerKg != nil {
		price = *in.PricePerKg
	}
	tx := &model.Transaction{
		ProductID:  product.ID,
		Kind:       in.Kind,
		WeightKg:   in.WeightKg,
		PricePerKg: price,
		Date:       in.Date,
	}
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	view := &model.TransactionView{Transaction: *tx, ProductName: &product.Name}
	s.wsHub.Publish(ws.ActionTransactionCreated,
		fmt.Sprintf("%s of %s %s for %s", tx.Kind, model.FormatKg(tx.WeightKg), product.Name, model.FormatBRL(tx.TotalValue)),
		view)
	return view, nil
}

func (s *inventoryService) DeleteTransaction(ctx context.Context, id uint) error {
	if err := s.transactionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.wsHub.Publish(ws.ActionTransactionDeleted, fmt.Sprintf("Transaction #%d deleted", id), map[string]uint{"id": id})
	return nil
}

func (s *inventoryService) Summarize(ctx context.Context) ([]model.ProductSummary, error) {
	return s.summaryRepo.SummarizeByProduct(ctx)
}
