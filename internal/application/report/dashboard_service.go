package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiz/backend/internal/domain/finance"
	"github.com/smallbiz/backend/internal/domain/partner"
	"github.com/smallbiz/backend/internal/domain/report"
	"github.com/smallbiz/backend/internal/domain/trade"
)

// DashboardService computes the dashboard scalars and the monthly sales
// series. Each aggregate is an independent read; there is no cross-aggregate
// snapshot.
type DashboardService struct {
	clientRepo    partner.ClientRepository
	saleRepo      trade.SaleRepository
	expenseRepo   finance.ExpenseRepository
	dashboardRepo report.DashboardRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	clientRepo partner.ClientRepository,
	saleRepo trade.SaleRepository,
	expenseRepo finance.ExpenseRepository,
	dashboardRepo report.DashboardRepository,
) *DashboardService {
	return &DashboardService{
		clientRepo:    clientRepo,
		saleRepo:      saleRepo,
		expenseRepo:   expenseRepo,
		dashboardRepo: dashboardRepo,
	}
}

// ClientCount returns the total number of clients
func (s *DashboardService) ClientCount(ctx context.Context) (int64, error) {
	return s.clientRepo.Count(ctx)
}

// SaleCount returns the total number of sales
func (s *DashboardService) SaleCount(ctx context.Context) (int64, error) {
	return s.saleRepo.Count(ctx)
}

// SalesRevenue sums total_price over all sales; zero when there are none
func (s *DashboardService) SalesRevenue(ctx context.Context) (decimal.Decimal, error) {
	return s.dashboardRepo.SalesRevenue(ctx)
}

// ExpensesTotal sums all expense amounts regardless of paid status
func (s *DashboardService) ExpensesTotal(ctx context.Context) (decimal.Decimal, error) {
	return s.expenseRepo.SumAmount(ctx)
}

// MonthlySales buckets the current year's sales by calendar month. Months
// with no sales are absent from the series.
func (s *DashboardService) MonthlySales(ctx context.Context) ([]report.MonthlySales, error) {
	return s.dashboardRepo.MonthlySalesForYear(ctx, time.Now().UTC().Year())
}
