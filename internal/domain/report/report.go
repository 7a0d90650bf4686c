package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySales is one month's sales total within the current year
type MonthlySales struct {
	Month string          `json:"month"`
	Sales decimal.Decimal `json:"sales"`
}

// ProductSales is the per-product rollup of quantity sold and revenue
type ProductSales struct {
	ProductName   string          `json:"product_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// SalesReportRepository computes per-product rollups. Results are ordered by
// revenue descending; an empty sales table yields an empty slice.
type SalesReportRepository interface {
	ByProduct(ctx context.Context) ([]ProductSales, error)
	// ByProductBetween restricts the rollup to sales created within
	// [start, end] inclusive.
	ByProductBetween(ctx context.Context, start, end time.Time) ([]ProductSales, error)
}

// DashboardRepository computes the dashboard scalars and series. Every
// aggregate treats an empty result set as zero.
type DashboardRepository interface {
	SalesRevenue(ctx context.Context) (decimal.Decimal, error)
	// MonthlySalesForYear buckets the year's sales by calendar month,
	// in month order, skipping months with no sales.
	MonthlySalesForYear(ctx context.Context, year int) ([]MonthlySales, error)
}
