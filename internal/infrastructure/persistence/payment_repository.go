package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/smallbiz/backend/internal/domain/finance"
	"github.com/smallbiz/backend/internal/domain/shared"
	"github.com/smallbiz/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	var model models.PaymentModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all payments, most recent payment date first
func (r *GormPaymentRepository) FindAll(ctx context.Context) ([]finance.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		Order("payment_date DESC NULLS LAST").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]finance.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *finance.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	return dbFromContext(ctx, r.db).WithContext(ctx).Save(model).Error
}

// Delete deletes a payment
func (r *GormPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).Delete(&models.PaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ finance.PaymentRepository = (*GormPaymentRepository)(nil)
