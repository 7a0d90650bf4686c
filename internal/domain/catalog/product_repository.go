package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines persistence operations for Product
type ProductRepository interface {
	// FindByID returns shared.ErrNotFound when no row exists
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindByIDForUpdate locks the product row for the duration of the
	// surrounding transaction. Outside a transaction it behaves like FindByID.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindAll returns all products ordered by name ascending
	FindAll(ctx context.Context) ([]Product, error)
	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error
	// Delete returns shared.ErrNotFound when no row was affected
	Delete(ctx context.Context, id uuid.UUID) error
}
