package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smallbiz/backend/internal/domain/finance"
)

// PaymentService handles payment CRUD operations
type PaymentService struct {
	paymentRepo finance.PaymentRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo finance.PaymentRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo}
}

// Create creates a new payment; the expense reference, date and method are
// all optional
func (s *PaymentService) Create(ctx context.Context, expenseID *uuid.UUID, paymentDate *time.Time, amount decimal.Decimal, method *string) (*finance.Payment, error) {
	payment, err := finance.NewPayment(expenseID, paymentDate, amount, method)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	return s.paymentRepo.FindByID(ctx, id)
}

// List retrieves all payments, most recent payment date first
func (s *PaymentService) List(ctx context.Context) ([]finance.Payment, error) {
	return s.paymentRepo.FindAll(ctx)
}

// Patch applies a partial update with fetch-then-merge semantics
func (s *PaymentService) Patch(ctx context.Context, id uuid.UUID, patch finance.PaymentPatch) (*finance.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	payment.ApplyPatch(patch)
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Delete removes a payment
func (s *PaymentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.paymentRepo.Delete(ctx, id)
}
