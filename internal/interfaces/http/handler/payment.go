package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	financeapp "github.com/smallbiz/backend/internal/application/finance"
	"github.com/smallbiz/backend/internal/domain/finance"
)

// PaymentHandler handles payment API endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *financeapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *financeapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePaymentRequest represents a request to record a payment. Only the
// amount is required; the expense link, date and method are optional. Amount
// is a pointer so a zero amount still satisfies required.
type CreatePaymentRequest struct {
	ExpenseID   *uuid.UUID `json:"expense_id"`
	PaymentDate *string    `json:"payment_date" binding:"omitempty,datetime=2006-01-02"`
	Amount      *float64   `json:"amount" binding:"required,gte=0"`
	Method      *string    `json:"method" binding:"omitempty,max=100"`
}

// UpdatePaymentRequest represents a partial update of a payment
type UpdatePaymentRequest struct {
	ExpenseID   *uuid.UUID `json:"expense_id"`
	PaymentDate *string    `json:"payment_date" binding:"omitempty,datetime=2006-01-02"`
	Amount      *float64   `json:"amount" binding:"omitempty,gte=0"`
	Method      *string    `json:"method" binding:"omitempty,max=100"`
}

// PaymentResponse is the wire shape of a payment
type PaymentResponse struct {
	ID          string  `json:"id"`
	ExpenseID   *string `json:"expense_id"`
	PaymentDate *string `json:"payment_date"`
	Amount      float64 `json:"amount"`
	Method      *string `json:"method"`
}

// ToPaymentResponse converts a domain payment to its wire shape
func ToPaymentResponse(p *finance.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:     p.ID.String(),
		Amount: p.Amount.InexactFloat64(),
		Method: p.Method,
	}
	if p.ExpenseID != nil {
		s := p.ExpenseID.String()
		resp.ExpenseID = &s
	}
	if p.PaymentDate != nil {
		s := formatDate(*p.PaymentDate)
		resp.PaymentDate = &s
	}
	return resp
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("", h.Create)
		payments.GET("", h.List)
		payments.GET("/:id", h.GetByID)
		payments.PATCH("/:id", h.Update)
		payments.DELETE("/:id", h.Delete)
	}
}

// Create records a payment
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	var paymentDate *time.Time
	if req.PaymentDate != nil {
		d, err := parseDate(*req.PaymentDate)
		if err != nil {
			h.BadRequest(c, "Invalid payment_date format")
			return
		}
		paymentDate = &d
	}

	payment, err := h.paymentService.Create(c.Request.Context(),
		req.ExpenseID, paymentDate, decimal.NewFromFloat(*req.Amount), req.Method)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, ToPaymentResponse(payment))
}

// List returns all payments, most recent first
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.paymentService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		resp = append(resp, ToPaymentResponse(&payments[i]))
	}
	h.Success(c, resp)
}

// GetByID returns a single payment
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	payment, err := h.paymentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ToPaymentResponse(payment))
}

// Update applies a partial update to a payment
func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	patch := finance.PaymentPatch{
		ExpenseID: req.ExpenseID,
		Method:    req.Method,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		patch.Amount = &amount
	}
	if req.PaymentDate != nil {
		d, err := parseDate(*req.PaymentDate)
		if err != nil {
			h.BadRequest(c, "Invalid payment_date format")
			return
		}
		patch.PaymentDate = &d
	}

	payment, err := h.paymentService.Patch(c.Request.Context(), id, patch)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ToPaymentResponse(payment))
}

// Delete removes a payment
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
