package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/smallbiz/backend/internal/domain/shared"
	"github.com/smallbiz/backend/internal/domain/trade"
	"github.com/smallbiz/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// saleColumns selects the sale row joined with its product name
const saleColumns = "s.id, s.product_id, p.name AS product_name, s.quantity, s.total_price, s.created_at"

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID, joining the product name
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	var row models.SaleRow
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Table("sales s").
		Select(saleColumns).
		Joins("JOIN products p ON s.product_id = p.id").
		Where("s.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// FindAll returns all sales, newest first, joining the product name
func (r *GormSaleRepository) FindAll(ctx context.Context) ([]trade.Sale, error) {
	var rows []models.SaleRow
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Table("sales s").
		Select(saleColumns).
		Joins("JOIN products p ON s.product_id = p.id").
		Order("s.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sales := make([]trade.Sale, len(rows))
	for i, row := range rows {
		sales[i] = *row.ToDomain()
	}
	return sales, nil
}

// Save creates or updates a sale
func (r *GormSaleRepository) Save(ctx context.Context, sale *trade.Sale) error {
	model := models.SaleModelFromDomain(sale)
	return dbFromContext(ctx, r.db).WithContext(ctx).Save(model).Error
}

// Delete deletes a sale
func (r *GormSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).Delete(&models.SaleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all sales
func (r *GormSaleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.SaleModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSaleRepository implements SaleRepository
var _ trade.SaleRepository = (*GormSaleRepository)(nil)
