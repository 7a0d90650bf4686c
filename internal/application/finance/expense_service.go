package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smallbiz/backend/internal/domain/finance"
)

// ExpenseService handles expense CRUD operations
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// Create creates a new expense. New expenses always start unpaid; the
// supplier reference is optional and not validated against the suppliers
// table.
func (s *ExpenseService) Create(ctx context.Context, description string, supplierID *uuid.UUID, amount decimal.Decimal, dueDate time.Time) (*finance.Expense, error) {
	expense, err := finance.NewExpense(description, supplierID, amount, dueDate)
	if err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	return s.expenseRepo.FindByID(ctx, id)
}

// List retrieves all expenses ordered by due date, soonest first
func (s *ExpenseService) List(ctx context.Context) ([]finance.Expense, error) {
	return s.expenseRepo.FindAll(ctx)
}

// Patch applies a partial update with fetch-then-merge semantics
func (s *ExpenseService) Patch(ctx context.Context, id uuid.UUID, patch finance.ExpensePatch) (*finance.Expense, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	expense.ApplyPatch(patch)
	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.expenseRepo.Delete(ctx, id)
}

// TotalAmount sums all expense amounts, paid or not; zero when there are none
func (s *ExpenseService) TotalAmount(ctx context.Context) (decimal.Decimal, error) {
	return s.expenseRepo.SumAmount(ctx)
}
