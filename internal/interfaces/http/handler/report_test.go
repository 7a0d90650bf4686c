package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	reportapp "github.com/smallbiz/backend/internal/application/report"
	"github.com/smallbiz/backend/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSalesReportRepository implements report.SalesReportRepository for testing
type MockSalesReportRepository struct {
	mock.Mock
}

func (m *MockSalesReportRepository) ByProduct(ctx context.Context) ([]report.ProductSales, error) {
	args := m.Called(ctx)
	return args.Get(0).([]report.ProductSales), args.Error(1)
}

func (m *MockSalesReportRepository) ByProductBetween(ctx context.Context, start, end time.Time) ([]report.ProductSales, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]report.ProductSales), args.Error(1)
}

func setupReportHandler(repo *MockSalesReportRepository) *ReportHandler {
	return NewReportHandler(reportapp.NewSalesReportService(repo))
}

func TestReportHandler_SalesByProduct(t *testing.T) {
	repo := new(MockSalesReportRepository)
	handler := setupReportHandler(repo)

	repo.On("ByProduct", mock.Anything).Return([]report.ProductSales{
		{ProductName: "Widget", TotalQuantity: 12, TotalRevenue: decimal.RequireFromString("239.88")},
		{ProductName: "Gadget", TotalQuantity: 3, TotalRevenue: decimal.RequireFromString("45.00")},
	}, nil)

	router := setupTestRouter()
	router.GET("/reports/sales", handler.SalesByProduct)

	req := httptest.NewRequest(http.MethodGet, "/reports/sales", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"product_name":"Widget","total_quantity":12,"total_revenue":239.88},
		{"product_name":"Gadget","total_quantity":3,"total_revenue":45}
	]`, w.Body.String())
}

func TestReportHandler_SalesByDate_InclusiveWindow(t *testing.T) {
	repo := new(MockSalesReportRepository)
	handler := setupReportHandler(repo)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	repo.On("ByProductBetween", mock.Anything, start, end).Return([]report.ProductSales{}, nil)

	router := setupTestRouter()
	router.GET("/reports/sales_by_date", handler.SalesByDate)

	req := httptest.NewRequest(http.MethodGet, "/reports/sales_by_date?start_date=2026-03-01&end_date=2026-03-31", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	repo.AssertExpectations(t)
}

func TestReportHandler_SalesByDate_MissingParams(t *testing.T) {
	handler := setupReportHandler(new(MockSalesReportRepository))

	router := setupTestRouter()
	router.GET("/reports/sales_by_date", handler.SalesByDate)

	req := httptest.NewRequest(http.MethodGet, "/reports/sales_by_date?start_date=2026-03-01", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandler_SalesByDate_ReversedWindow(t *testing.T) {
	handler := setupReportHandler(new(MockSalesReportRepository))

	router := setupTestRouter()
	router.GET("/reports/sales_by_date", handler.SalesByDate)

	req := httptest.NewRequest(http.MethodGet, "/reports/sales_by_date?start_date=2026-03-31&end_date=2026-03-01", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
