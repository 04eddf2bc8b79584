package service

import (
	"context"

	"go-pescados/internal/model"
	"go-pescados/internal/repository"
)

type DashboardService interface {
	GetStockMovement(ctx context.Context, days int) ([]repository.StockMovementData, error)
	GetDashboardStats(ctx context.Context) (*model.LedgerTotals, error)
}

type dashboardService struct {
	txRepo      repository.TransactionRepository
	summaryRepo repository.SummaryRepository
}

func NewDashboardService(txRepo repository.TransactionRepository, summaryRepo repository.SummaryRepository) DashboardService {
	return &dashboardService{txRepo: txRepo, summaryRepo: summaryRepo}
}

// GetStockMovement covers the last days days up to and including today.
func (s *dashboardService) GetStockMovement(ctx context.Context, days int) ([]repository.StockMovementData, error) {
	endDate := model.Today()
	startDate := endDate.Add(-days)

	return s.txRepo.GetStockMovement(ctx, startDate, endDate)
}

func (s *dashboardService) GetDashboardStats(ctx context.Context) (*model.LedgerTotals, error) {
	summaries, err := s.summaryRepo.SummarizeByProduct(ctx)
	if err != nil {
		return nil, err
	}
	totals := model.Totals(summaries)

	totals.Transactions, err = s.txRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
