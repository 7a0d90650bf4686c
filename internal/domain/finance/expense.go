package finance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smallbiz/backend/internal/domain/shared"
)

// Expense is money owed by the business. SupplierID is a nullable weak
// reference; existence of the supplier is not enforced at this layer.
type Expense struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	SupplierID  *uuid.UUID      `json:"supplier_id"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	Paid        bool            `json:"paid"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewExpense creates an unpaid expense with a server-assigned ID and timestamp
func NewExpense(description string, supplierID *uuid.UUID, amount decimal.Decimal, dueDate time.Time) (*Expense, error) {
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Expense description is required")
	}
	return &Expense{
		ID:          shared.NewID(),
		Description: description,
		SupplierID:  supplierID,
		Amount:      amount,
		DueDate:     dueDate,
		Paid:        false,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// ExpensePatch is a sparse overlay for partial updates
type ExpensePatch struct {
	Description *string
	SupplierID  *uuid.UUID
	Amount      *decimal.Decimal
	DueDate     *time.Time
	Paid        *bool
}

// ApplyPatch merges the overlay into the expense
func (e *Expense) ApplyPatch(p ExpensePatch) {
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.SupplierID != nil {
		e.SupplierID = p.SupplierID
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.DueDate != nil {
		e.DueDate = *p.DueDate
	}
	if p.Paid != nil {
		e.Paid = *p.Paid
	}
}
