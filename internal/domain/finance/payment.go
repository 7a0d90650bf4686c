package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smallbiz/backend/internal/domain/shared"
)

// Payment is money paid out, optionally against an expense. ExpenseID is a
// nullable weak reference.
type Payment struct {
	ID          uuid.UUID       `json:"id"`
	ExpenseID   *uuid.UUID      `json:"expense_id"`
	PaymentDate *time.Time      `json:"payment_date"`
	Amount      decimal.Decimal `json:"amount"`
	Method      *string         `json:"method"`
}

// NewPayment creates a payment with a server-assigned ID
func NewPayment(expenseID *uuid.UUID, paymentDate *time.Time, amount decimal.Decimal, method *string) (*Payment, error) {
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Payment amount cannot be negative")
	}
	return &Payment{
		ID:          shared.NewID(),
		ExpenseID:   expenseID,
		PaymentDate: paymentDate,
		Amount:      amount,
		Method:      method,
	}, nil
}

// PaymentPatch is a sparse overlay for partial updates
type PaymentPatch struct {
	ExpenseID   *uuid.UUID
	PaymentDate *time.Time
	Amount      *decimal.Decimal
	Method      *string
}

// ApplyPatch merges the overlay into the payment
func (p *Payment) ApplyPatch(patch PaymentPatch) {
	if patch.ExpenseID != nil {
		p.ExpenseID = patch.ExpenseID
	}
	if patch.PaymentDate != nil {
		p.PaymentDate = patch.PaymentDate
	}
	if patch.Amount != nil {
		p.Amount = *patch.Amount
	}
	if patch.Method != nil {
		p.Method = patch.Method
	}
}
