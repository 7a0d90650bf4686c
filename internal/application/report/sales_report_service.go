package report

import (
	"context"
	"time"

	"github.com/smallbiz/backend/internal/domain/report"
)

// SalesReportService computes per-product sales rollups
type SalesReportService struct {
	reportRepo report.SalesReportRepository
}

// NewSalesReportService creates a new SalesReportService
func NewSalesReportService(reportRepo report.SalesReportRepository) *SalesReportService {
	return &SalesReportService{reportRepo: reportRepo}
}

// ByProduct rolls up every sale by product, ordered by revenue descending
func (s *SalesReportService) ByProduct(ctx context.Context) ([]report.ProductSales, error) {
	return s.reportRepo.ByProduct(ctx)
}

// ByProductBetween rolls up sales created within the given dates, inclusive
// on both ends: the window runs from the start of startDate to the last
// second of endDate.
func (s *SalesReportService) ByProductBetween(ctx context.Context, startDate, endDate time.Time) ([]report.ProductSales, error) {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 23, 59, 59, 0, time.UTC)
	return s.reportRepo.ByProductBetween(ctx, start, end)
}
