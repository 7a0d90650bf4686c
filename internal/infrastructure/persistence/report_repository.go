package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiz/backend/internal/domain/report"
	"gorm.io/gorm"
)

// GormReportRepository implements the report query interfaces using GORM.
// Every aggregate uses COALESCE so an empty table yields zero rather than NULL.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// SalesRevenue returns the sum of all sale totals
func (r *GormReportRepository) SalesRevenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.db.WithContext(ctx).
		Table("sales").
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&revenue).Error
	if err != nil {
		return decimal.Zero, err
	}
	return revenue, nil
}

// MonthlySalesForYear buckets the given year's sales by calendar month.
// Months with no sales are skipped; buckets come back in month order.
func (r *GormReportRepository) MonthlySalesForYear(ctx context.Context, year int) ([]report.MonthlySales, error) {
	type monthlyResult struct {
		MonthName string
		Sales     decimal.Decimal
	}

	var results []monthlyResult
	err := r.db.WithContext(ctx).
		Table("sales").
		Select("to_char(created_at, 'Mon') AS month_name, COALESCE(SUM(total_price), 0) AS sales").
		Where("EXTRACT(YEAR FROM created_at) = ?", year).
		Group("month_name, EXTRACT(MONTH FROM created_at)").
		Order("EXTRACT(MONTH FROM created_at)").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	monthly := make([]report.MonthlySales, len(results))
	for i, row := range results {
		monthly[i] = report.MonthlySales{
			Month: row.MonthName,
			Sales: row.Sales,
		}
	}
	return monthly, nil
}

// ByProduct returns the per-product quantity and revenue rollup, highest
// revenue first
func (r *GormReportRepository) ByProduct(ctx context.Context) ([]report.ProductSales, error) {
	return r.byProduct(ctx, nil, nil)
}

// ByProductBetween restricts the rollup to sales created within [start, end]
func (r *GormReportRepository) ByProductBetween(ctx context.Context, start, end time.Time) ([]report.ProductSales, error) {
	return r.byProduct(ctx, &start, &end)
}

func (r *GormReportRepository) byProduct(ctx context.Context, start, end *time.Time) ([]report.ProductSales, error) {
	type productResult struct {
		ProductName   string
		TotalQuantity int64
		TotalRevenue  decimal.Decimal
	}

	query := r.db.WithContext(ctx).
		Table("sales s").
		Select(`
			p.name AS product_name,
			COALESCE(SUM(s.quantity), 0) AS total_quantity,
			COALESCE(SUM(s.total_price), 0) AS total_revenue
		`).
		Joins("JOIN products p ON s.product_id = p.id")

	if start != nil && end != nil {
		query = query.Where("s.created_at BETWEEN ? AND ?", *start, *end)
	}

	var results []productResult
	err := query.
		Group("p.name").
		Order("total_revenue DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rollup := make([]report.ProductSales, len(results))
	for i, row := range results {
		rollup[i] = report.ProductSales{
			ProductName:   row.ProductName,
			TotalQuantity: row.TotalQuantity,
			TotalRevenue:  row.TotalRevenue,
		}
	}
	return rollup, nil
}

// Ensure GormReportRepository implements the report query interfaces
var (
	_ report.DashboardRepository   = (*GormReportRepository)(nil)
	_ report.SalesReportRepository = (*GormReportRepository)(nil)
)
