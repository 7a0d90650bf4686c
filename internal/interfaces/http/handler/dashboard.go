package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/smallbiz/backend/internal/application/report"
	"github.com/smallbiz/backend/internal/interfaces/http/dto"
)

// DashboardHandler serves the dashboard scalar aggregates and the monthly
// sales series. Each endpoint returns its value in a small bare object.
type DashboardHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *reportapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// MonthlySalesResponse is one month's bucket in the monthly sales series
type MonthlySalesResponse struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/clients/count", h.ClientCount)
	rg.GET("/sales/count", h.SaleCount)
	rg.GET("/sales/revenue", h.SalesRevenue)
	rg.GET("/sales/monthly", h.MonthlySales)
	rg.GET("/expenses/total", h.ExpensesTotal)
}

// ClientCount returns the total number of clients
func (h *DashboardHandler) ClientCount(c *gin.Context) {
	count, err := h.dashboardService.ClientCount(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.CountResponse{Count: count})
}

// SaleCount returns the total number of sales
func (h *DashboardHandler) SaleCount(c *gin.Context) {
	count, err := h.dashboardService.SaleCount(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.CountResponse{Count: count})
}

// SalesRevenue returns the sum of all sale totals
func (h *DashboardHandler) SalesRevenue(c *gin.Context) {
	revenue, err := h.dashboardService.SalesRevenue(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.RevenueResponse{Revenue: revenue.InexactFloat64()})
}

// ExpensesTotal returns the sum of all expense amounts
func (h *DashboardHandler) ExpensesTotal(c *gin.Context) {
	total, err := h.dashboardService.ExpensesTotal(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.TotalResponse{Total: total.InexactFloat64()})
}

// MonthlySales returns the current year's sales bucketed by month
func (h *DashboardHandler) MonthlySales(c *gin.Context) {
	series, err := h.dashboardService.MonthlySales(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := make([]MonthlySalesResponse, 0, len(series))
	for _, bucket := range series {
		resp = append(resp, MonthlySalesResponse{
			Month: bucket.Month,
			Sales: bucket.Sales.InexactFloat64(),
		})
	}
	h.Success(c, resp)
}
