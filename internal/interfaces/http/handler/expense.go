package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	financeapp "github.com/smallbiz/backend/internal/application/finance"
	"github.com/smallbiz/backend/internal/domain/finance"
)

// ExpenseHandler handles expense API endpoints
type ExpenseHandler struct {
	BaseHandler
	expenseService *financeapp.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *financeapp.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents a request to create an expense.
// New expenses always start unpaid. Amount is a pointer so a zero amount
// still satisfies required.
type CreateExpenseRequest struct {
	Description string     `json:"description" binding:"required,min=1,max=500"`
	SupplierID  *uuid.UUID `json:"supplier_id"`
	Amount      *float64   `json:"amount" binding:"required,gte=0"`
	DueDate     string     `json:"due_date" binding:"required,datetime=2006-01-02"`
}

// UpdateExpenseRequest represents a partial update of an expense
type UpdateExpenseRequest struct {
	Description *string    `json:"description" binding:"omitempty,min=1,max=500"`
	SupplierID  *uuid.UUID `json:"supplier_id"`
	Amount      *float64   `json:"amount" binding:"omitempty,gte=0"`
	DueDate     *string    `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Paid        *bool      `json:"paid"`
}

// ExpenseResponse is the wire shape of an expense
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	SupplierID  *string   `json:"supplier_id"`
	Amount      float64   `json:"amount"`
	DueDate     string    `json:"due_date"`
	Paid        bool      `json:"paid"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToExpenseResponse converts a domain expense to its wire shape
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:          e.ID.String(),
		Description: e.Description,
		Amount:      e.Amount.InexactFloat64(),
		DueDate:     formatDate(e.DueDate),
		Paid:        e.Paid,
		CreatedAt:   e.CreatedAt,
	}
	if e.SupplierID != nil {
		s := e.SupplierID.String()
		resp.SupplierID = &s
	}
	return resp
}

// RegisterRoutes registers expense routes
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.Create)
		expenses.GET("", h.List)
		expenses.GET("/:id", h.GetByID)
		expenses.PATCH("/:id", h.Update)
		expenses.DELETE("/:id", h.Delete)
	}
}

// Create creates a new expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		h.BadRequest(c, "Invalid due_date format")
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(),
		req.Description, req.SupplierID, decimal.NewFromFloat(*req.Amount), dueDate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, ToExpenseResponse(expense))
}

// List returns all expenses ordered by due date
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenseService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		resp = append(resp, ToExpenseResponse(&expenses[i]))
	}
	h.Success(c, resp)
}

// GetByID returns a single expense
func (h *ExpenseHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	expense, err := h.expenseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ToExpenseResponse(expense))
}

// Update applies a partial update to an expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	patch := finance.ExpensePatch{
		Description: req.Description,
		SupplierID:  req.SupplierID,
		Paid:        req.Paid,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		patch.Amount = &amount
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate)
		if err != nil {
			h.BadRequest(c, "Invalid due_date format")
			return
		}
		patch.DueDate = &dueDate
	}

	expense, err := h.expenseService.Patch(c.Request.Context(), id, patch)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ToExpenseResponse(expense))
}

// Delete removes an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
