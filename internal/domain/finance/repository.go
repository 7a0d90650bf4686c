package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseRepository defines persistence operations for Expense
type ExpenseRepository interface {
	// FindByID returns shared.ErrNotFound when no row exists
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	// FindAll returns all expenses ordered by due date ascending
	FindAll(ctx context.Context) ([]Expense, error)
	// Save creates or updates an expense
	Save(ctx context.Context, expense *Expense) error
	// Delete returns shared.ErrNotFound when no row was affected
	Delete(ctx context.Context, id uuid.UUID) error
	// SumAmount returns the sum of all expense amounts, zero for an empty table
	SumAmount(ctx context.Context) (decimal.Decimal, error)
}

// PaymentRepository defines persistence operations for Payment
type PaymentRepository interface {
	// FindByID returns shared.ErrNotFound when no row exists
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	// FindAll returns all payments, most recent payment date first
	FindAll(ctx context.Context) ([]Payment, error)
	// Save creates or updates a payment
	Save(ctx context.Context, payment *Payment) error
	// Delete returns shared.ErrNotFound when no row was affected
	Delete(ctx context.Context, id uuid.UUID) error
}
