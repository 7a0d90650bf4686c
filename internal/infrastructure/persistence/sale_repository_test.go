package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smallbiz/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockSaleRepository(t *testing.T) (*GormSaleRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormSaleRepository(gormDB), mock, mockDB
}

var saleRowColumns = []string{"id", "product_id", "product_name", "quantity", "total_price", "created_at"}

func TestGormSaleRepository_FindByID(t *testing.T) {
	t.Run("joins the product name onto the sale", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		saleID := uuid.New()
		productID := uuid.New()
		createdAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

		rows := sqlmock.NewRows(saleRowColumns).
			AddRow(saleID, productID, "Widget", 3, "59.97", createdAt)

		mock.ExpectQuery(`SELECT s\.id, s\.product_id, p\.name AS product_name, s\.quantity, s\.total_price, s\.created_at FROM sales s JOIN products p ON s\.product_id = p\.id WHERE s\.id = \$1 LIMIT .*`).
			WithArgs(saleID, 1).
			WillReturnRows(rows)

		sale, err := repo.FindByID(context.Background(), saleID)

		assert.NoError(t, err)
		require.NotNil(t, sale)
		assert.Equal(t, saleID, sale.ID)
		assert.Equal(t, "Widget", sale.ProductName)
		assert.Equal(t, 3, sale.Quantity)
		assert.True(t, sale.TotalPrice.Equal(decimal.RequireFromString("59.97")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing sale", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		saleID := uuid.New()

		mock.ExpectQuery(`SELECT s\.id, .* FROM sales s JOIN products p .* WHERE s\.id = \$1 LIMIT .*`).
			WithArgs(saleID, 1).
			WillReturnRows(sqlmock.NewRows(saleRowColumns))

		sale, err := repo.FindByID(context.Background(), saleID)

		assert.Nil(t, sale)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSaleRepository_FindAll(t *testing.T) {
	repo, mock, mockDB := newMockSaleRepository(t)
	defer mockDB.Close()

	newer := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	older := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(saleRowColumns).
		AddRow(uuid.New(), uuid.New(), "Widget", 2, "39.98", newer).
		AddRow(uuid.New(), uuid.New(), "Gadget", 1, "12.50", older)

	mock.ExpectQuery(`SELECT s\.id, .* FROM sales s JOIN products p ON s\.product_id = p\.id ORDER BY s\.created_at DESC`).
		WillReturnRows(rows)

	sales, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "Widget", sales[0].ProductName)
	assert.Equal(t, "Gadget", sales[1].ProductName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSaleRepository_Delete(t *testing.T) {
	t.Run("returns ErrNotFound when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		saleID := uuid.New()

		mock.ExpectExec(`DELETE FROM "sales" WHERE id = \$1`).
			WithArgs(saleID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), saleID), shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSaleRepository_Count(t *testing.T) {
	repo, mock, mockDB := newMockSaleRepository(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "sales"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))

	count, err := repo.Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
