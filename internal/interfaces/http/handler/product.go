package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	catalogapp "github.com/smallbiz/backend/internal/application/catalog"
	"github.com/smallbiz/backend/internal/domain/catalog"
)

// ProductHandler handles product API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductRequest is the body for both create and update: a product update is
// a full replacement, so the two operations share one shape. Price is a
// pointer so a free product (price 0) still satisfies required.
type ProductRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Stock       int      `json:"stock" binding:"gte=0"`
}

// ProductResponse is the wire shape of a product
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// ToProductResponse converts a domain product to its wire shape
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Stock:       p.Stock,
	}
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.GetByID)
		products.PATCH("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

// Create creates a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(),
		req.Name, req.Description, decimal.NewFromFloat(*req.Price), req.Stock)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, ToProductResponse(product))
}

// List returns all products ordered by name
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := make([]ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, ToProductResponse(&products[i]))
	}
	h.Success(c, resp)
}

// GetByID returns a single product
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ToProductResponse(product))
}

// Update replaces every mutable field of a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	product, err := h.productService.Replace(c.Request.Context(), id,
		req.Name, req.Description, decimal.NewFromFloat(*req.Price), req.Stock)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ToProductResponse(product))
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
