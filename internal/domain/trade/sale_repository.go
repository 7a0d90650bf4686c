package trade

import (
	"context"

	"github.com/google/uuid"
)

// SaleRepository defines persistence operations for Sale. Reads join the
// product name; writes persist only the sale columns.
type SaleRepository interface {
	// FindByID returns shared.ErrNotFound when no row exists
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	// FindAll returns all sales ordered by creation time descending
	FindAll(ctx context.Context) ([]Sale, error)
	// Save creates or updates a sale
	Save(ctx context.Context, sale *Sale) error
	// Delete returns shared.ErrNotFound when no row was affected
	Delete(ctx context.Context, id uuid.UUID) error
	// Count returns the total number of sales
	Count(ctx context.Context) (int64, error)
}
