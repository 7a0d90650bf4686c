package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/smallbiz/backend/internal/application/report"
	"github.com/smallbiz/backend/internal/domain/report"
)

// ReportHandler serves the per-product sales reports
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.SalesReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.SalesReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SalesByDateQuery carries the inclusive date window of a filtered report
type SalesByDateQuery struct {
	StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"required,datetime=2006-01-02"`
}

// ProductSalesResponse is one product's rollup in a sales report
type ProductSalesResponse struct {
	ProductName   string  `json:"product_name"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

func toProductSalesResponses(rows []report.ProductSales) []ProductSalesResponse {
	resp := make([]ProductSalesResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, ProductSalesResponse{
			ProductName:   row.ProductName,
			TotalQuantity: row.TotalQuantity,
			TotalRevenue:  row.TotalRevenue.InexactFloat64(),
		})
	}
	return resp
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/sales", h.SalesByProduct)
		reports.GET("/sales_by_date", h.SalesByDate)
	}
}

// SalesByProduct rolls up all sales by product, highest revenue first
func (h *ReportHandler) SalesByProduct(c *gin.Context) {
	rows, err := h.reportService.ByProduct(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toProductSalesResponses(rows))
}

// SalesByDate rolls up sales created within the given inclusive date window
func (h *ReportHandler) SalesByDate(c *gin.Context) {
	var query SalesByDateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	start, err := parseDate(query.StartDate)
	if err != nil {
		h.BadRequest(c, "Invalid start_date format")
		return
	}
	end, err := parseDate(query.EndDate)
	if err != nil {
		h.BadRequest(c, "Invalid end_date format")
		return
	}
	if end.Before(start) {
		h.BadRequest(c, "end_date must not be before start_date")
		return
	}

	rows, err := h.reportService.ByProductBetween(c.Request.Context(), start, end)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toProductSalesResponses(rows))
}
