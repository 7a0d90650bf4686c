package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockReportRepository(t *testing.T) (*GormReportRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormReportRepository(gormDB), mock, mockDB
}

func TestGormReportRepository_SalesRevenue(t *testing.T) {
	t.Run("sums all sale totals", func(t *testing.T) {
		repo, mock, mockDB := newMockReportRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(total_price\), 0\) FROM "sales"`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("1234.56"))

		revenue, err := repo.SalesRevenue(context.Background())

		assert.NoError(t, err)
		assert.True(t, revenue.Equal(decimal.RequireFromString("1234.56")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table yields zero", func(t *testing.T) {
		repo, mock, mockDB := newMockReportRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(total_price\), 0\) FROM "sales"`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))

		revenue, err := repo.SalesRevenue(context.Background())

		assert.NoError(t, err)
		assert.True(t, revenue.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormReportRepository_MonthlySalesForYear(t *testing.T) {
	repo, mock, mockDB := newMockReportRepository(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"month_name", "sales"}).
		AddRow("Jan", "100.00").
		AddRow("Mar", "250.50")

	mock.ExpectQuery(`SELECT to_char\(created_at, 'Mon'\) AS month_name, COALESCE\(SUM\(total_price\), 0\) AS sales FROM "sales" WHERE EXTRACT\(YEAR FROM created_at\) = \$1 GROUP BY .* ORDER BY .*`).
		WithArgs(2026).
		WillReturnRows(rows)

	monthly, err := repo.MonthlySalesForYear(context.Background(), 2026)

	assert.NoError(t, err)
	require.Len(t, monthly, 2)
	assert.Equal(t, "Jan", monthly[0].Month)
	assert.True(t, monthly[0].Sales.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, "Mar", monthly[1].Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormReportRepository_ByProduct(t *testing.T) {
	repo, mock, mockDB := newMockReportRepository(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"product_name", "total_quantity", "total_revenue"}).
		AddRow("Widget", int64(10), "199.90").
		AddRow("Gadget", int64(4), "50.00")

	mock.ExpectQuery(`SELECT .*p\.name AS product_name.* FROM sales s JOIN products p ON s\.product_id = p\.id GROUP BY "?p"?\."?name"? ORDER BY total_revenue DESC`).
		WillReturnRows(rows)

	rollup, err := repo.ByProduct(context.Background())

	assert.NoError(t, err)
	require.Len(t, rollup, 2)
	assert.Equal(t, "Widget", rollup[0].ProductName)
	assert.Equal(t, int64(10), rollup[0].TotalQuantity)
	assert.True(t, rollup[0].TotalRevenue.Equal(decimal.RequireFromString("199.90")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormReportRepository_ByProductBetween(t *testing.T) {
	repo, mock, mockDB := newMockReportRepository(t)
	defer mockDB.Close()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"product_name", "total_quantity", "total_revenue"}).
		AddRow("Widget", int64(2), "39.98")

	mock.ExpectQuery(`SELECT .* FROM sales s JOIN products p ON s\.product_id = p\.id WHERE s\.created_at BETWEEN \$1 AND \$2 GROUP BY "?p"?\."?name"? ORDER BY total_revenue DESC`).
		WithArgs(start, end).
		WillReturnRows(rows)

	rollup, err := repo.ByProductBetween(context.Background(), start, end)

	assert.NoError(t, err)
	require.Len(t, rollup, 1)
	assert.Equal(t, "Widget", rollup[0].ProductName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
