package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/smallbiz/backend/internal/application/partner"
	"github.com/smallbiz/backend/internal/domain/partner"
)

// SupplierHandler handles supplier API endpoints
type SupplierHandler struct {
	BaseHandler
	supplierService *partnerapp.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *partnerapp.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=200"`
	Email *string `json:"email" binding:"omitempty,email,max=200"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
}

// UpdateSupplierRequest represents a partial update of a supplier
type UpdateSupplierRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email *string `json:"email" binding:"omitempty,email,max=200"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
}

// RegisterRoutes registers supplier routes
func (h *SupplierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.Create)
		suppliers.GET("", h.List)
		suppliers.GET("/:id", h.GetByID)
		suppliers.PATCH("/:id", h.Update)
		suppliers.DELETE("/:id", h.Delete)
	}
}

// Create creates a new supplier
func (h *SupplierHandler) Create(c *gin.Context) {
	var req CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	supplier, err := h.supplierService.Create(c.Request.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, supplier)
}

// List returns all suppliers ordered by name
func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.supplierService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, suppliers)
}

// GetByID returns a single supplier
func (h *SupplierHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	supplier, err := h.supplierService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, supplier)
}

// Update applies a partial update to a supplier
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	var req UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	supplier, err := h.supplierService.Patch(c.Request.Context(), id, partner.SupplierPatch{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, supplier)
}

// Delete removes a supplier
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
