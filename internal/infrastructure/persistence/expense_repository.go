package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smallbiz/backend/internal/domain/finance"
	"github.com/smallbiz/backend/internal/domain/shared"
	"github.com/smallbiz/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	var model models.ExpenseModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all expenses ordered by due date
func (r *GormExpenseRepository) FindAll(ctx context.Context) ([]finance.Expense, error) {
	var expenseModels []models.ExpenseModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		Order("due_date ASC").
		Find(&expenseModels).Error; err != nil {
		return nil, err
	}

	expenses := make([]finance.Expense, len(expenseModels))
	for i, model := range expenseModels {
		expenses[i] = *model.ToDomain()
	}
	return expenses, nil
}

// Save creates or updates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	model := models.ExpenseModelFromDomain(expense)
	return dbFromContext(ctx, r.db).WithContext(ctx).Save(model).Error
}

// Delete deletes an expense
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).Delete(&models.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SumAmount returns the sum of all expense amounts, zero for an empty table
func (r *GormExpenseRepository) SumAmount(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.ExpenseModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// Ensure GormExpenseRepository implements ExpenseRepository
var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
