package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/smallbiz/backend/internal/domain/partner"
)

// ClientService handles client CRUD operations
type ClientService struct {
	clientRepo partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// Create creates a new client and returns the stored row
func (s *ClientService) Create(ctx context.Context, name, email, phone string) (*partner.Client, error) {
	client, err := partner.NewClient(name, email, phone)
	if err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	return s.clientRepo.FindByID(ctx, id)
}

// List retrieves all clients ordered by name
func (s *ClientService) List(ctx context.Context) ([]partner.Client, error) {
	return s.clientRepo.FindAll(ctx)
}

// Patch applies a partial update: the current row is fetched, fields present
// in the overlay replace stored values, absent fields are preserved, and the
// merged row is written back. Returns shared.ErrNotFound when the client does
// not exist; a patch never creates a row.
func (s *ClientService) Patch(ctx context.Context, id uuid.UUID, patch partner.ClientPatch) (*partner.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	client.ApplyPatch(patch)
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes a client; shared.ErrNotFound when no row exists
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.clientRepo.Delete(ctx, id)
}

// Count returns the total number of clients
func (s *ClientService) Count(ctx context.Context) (int64, error) {
	return s.clientRepo.Count(ctx)
}
