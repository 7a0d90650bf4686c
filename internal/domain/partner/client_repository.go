package partner

import (
	"context"

	"github.com/google/uuid"
)

// ClientRepository defines persistence operations for Client
type ClientRepository interface {
	// FindByID returns shared.ErrNotFound when no row exists
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	// FindAll returns all clients ordered by name ascending
	FindAll(ctx context.Context) ([]Client, error)
	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error
	// Delete returns shared.ErrNotFound when no row was affected
	Delete(ctx context.Context, id uuid.UUID) error
	// Count returns the total number of clients
	Count(ctx context.Context) (int64, error)
}
