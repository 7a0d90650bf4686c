package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/smallbiz/backend/internal/domain/partner"
)

// SupplierService handles supplier CRUD operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// Create creates a new supplier; email and phone are optional
func (s *SupplierService) Create(ctx context.Context, name string, email, phone *string) (*partner.Supplier, error) {
	supplier, err := partner.NewSupplier(name, email, phone)
	if err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	return s.supplierRepo.FindByID(ctx, id)
}

// List retrieves all suppliers ordered by name
func (s *SupplierService) List(ctx context.Context) ([]partner.Supplier, error) {
	return s.supplierRepo.FindAll(ctx)
}

// Patch applies a partial update with fetch-then-merge semantics
func (s *SupplierService) Patch(ctx context.Context, id uuid.UUID, patch partner.SupplierPatch) (*partner.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	supplier.ApplyPatch(patch)
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.supplierRepo.Delete(ctx, id)
}
