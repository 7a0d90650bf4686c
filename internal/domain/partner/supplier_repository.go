package partner

import (
	"context"

	"github.com/google/uuid"
)

// SupplierRepository defines persistence operations for Supplier
type SupplierRepository interface {
	// FindByID returns shared.ErrNotFound when no row exists
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	// FindAll returns all suppliers ordered by name ascending
	FindAll(ctx context.Context) ([]Supplier, error)
	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error
	// Delete returns shared.ErrNotFound when no row was affected
	Delete(ctx context.Context, id uuid.UUID) error
}
