package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smallbiz/backend/internal/domain/finance"
)

// ExpenseModel is the persistence model for the Expense domain entity.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description string          `gorm:"type:text;not null"`
	SupplierID  *uuid.UUID      `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DueDate     time.Time       `gorm:"type:date;not null"`
	Paid        bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense entity.
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		ID:          m.ID,
		Description: m.Description,
		SupplierID:  m.SupplierID,
		Amount:      m.Amount,
		DueDate:     m.DueDate,
		Paid:        m.Paid,
		CreatedAt:   m.CreatedAt,
	}
}

// ExpenseModelFromDomain creates a persistence model from a domain Expense entity.
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          e.ID,
		Description: e.Description,
		SupplierID:  e.SupplierID,
		Amount:      e.Amount,
		DueDate:     e.DueDate,
		Paid:        e.Paid,
		CreatedAt:   e.CreatedAt,
	}
}

// PaymentModel is the persistence model for the Payment domain entity.
type PaymentModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ExpenseID   *uuid.UUID      `gorm:"type:uuid;index"`
	PaymentDate *time.Time      `gorm:"type:date"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Method      *string         `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *finance.Payment {
	return &finance.Payment{
		ID:          m.ID,
		ExpenseID:   m.ExpenseID,
		PaymentDate: m.PaymentDate,
		Amount:      m.Amount,
		Method:      m.Method,
	}
}

// PaymentModelFromDomain creates a persistence model from a domain Payment entity.
func PaymentModelFromDomain(p *finance.Payment) *PaymentModel {
	return &PaymentModel{
		ID:          p.ID,
		ExpenseID:   p.ExpenseID,
		PaymentDate: p.PaymentDate,
		Amount:      p.Amount,
		Method:      p.Method,
	}
}
