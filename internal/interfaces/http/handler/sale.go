package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	tradeapp "github.com/smallbiz/backend/internal/application/trade"
	"github.com/smallbiz/backend/internal/domain/trade"
)

// SaleHandler handles sale API endpoints
type SaleHandler struct {
	BaseHandler
	saleService *tradeapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *tradeapp.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// CreateSaleRequest represents a request to record a sale. The total price is
// never accepted from the caller; it is derived from the product's price.
type CreateSaleRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// UpdateSaleRequest represents a partial update of a sale
type UpdateSaleRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	Quantity  *int       `json:"quantity" binding:"omitempty,gt=0"`
}

// SaleResponse is the wire shape of a sale
type SaleResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToSaleResponse converts a domain sale to its wire shape
func ToSaleResponse(s *trade.Sale) SaleResponse {
	return SaleResponse{
		ID:          s.ID.String(),
		ProductID:   s.ProductID.String(),
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		TotalPrice:  s.TotalPrice.InexactFloat64(),
		CreatedAt:   s.CreatedAt,
	}
}

// RegisterRoutes registers sale routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.POST("", h.Create)
		sales.GET("", h.List)
		sales.GET("/:id", h.GetByID)
		sales.PATCH("/:id", h.Update)
		sales.DELETE("/:id", h.Delete)
	}
}

// Create records a sale at the product's current price
func (h *SaleHandler) Create(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	sale, err := h.saleService.Create(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, ToSaleResponse(sale))
}

// List returns all sales, newest first
func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.saleService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := make([]SaleResponse, 0, len(sales))
	for i := range sales {
		resp = append(resp, ToSaleResponse(&sales[i]))
	}
	h.Success(c, resp)
}

// GetByID returns a single sale
func (h *SaleHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	sale, err := h.saleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ToSaleResponse(sale))
}

// Update patches a sale and re-derives its total price
func (h *SaleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	var req UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	sale, err := h.saleService.Update(c.Request.Context(), id, tradeapp.UpdateSaleInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ToSaleResponse(sale))
}

// Delete removes a sale
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	if err := h.saleService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
