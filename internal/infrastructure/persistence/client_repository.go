package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/smallbiz/backend/internal/domain/partner"
	"github.com/smallbiz/backend/internal/domain/shared"
	"github.com/smallbiz/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	var model models.ClientModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all clients ordered by name
func (r *GormClientRepository) FindAll(ctx context.Context) ([]partner.Client, error) {
	var clientModels []models.ClientModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		Order("name ASC").
		Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]partner.Client, len(clientModels))
	for i, model := range clientModels {
		clients[i] = *model.ToDomain()
	}
	return clients, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *partner.Client) error {
	model := models.ClientModelFromDomain(client)
	return dbFromContext(ctx, r.db).WithContext(ctx).Save(model).Error
}

// Delete deletes a client
func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).Delete(&models.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all clients
func (r *GormClientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.ClientModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormClientRepository implements ClientRepository
var _ partner.ClientRepository = (*GormClientRepository)(nil)
