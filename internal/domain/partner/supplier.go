package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smallbiz/backend/internal/domain/shared"
)

// Supplier represents a goods or services provider. Email and phone are
// optional contact details.
type Supplier struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSupplier creates a new supplier with a server-assigned ID and timestamp
func NewSupplier(name string, email, phone *string) (*Supplier, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Supplier name is required")
	}
	return &Supplier{
		ID:        shared.NewID(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// SupplierPatch is a sparse overlay for partial updates
type SupplierPatch struct {
	Name  *string
	Email *string
	Phone *string
}

// ApplyPatch merges the overlay into the supplier
func (s *Supplier) ApplyPatch(p SupplierPatch) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Email != nil {
		s.Email = p.Email
	}
	if p.Phone != nil {
		s.Phone = p.Phone
	}
}
