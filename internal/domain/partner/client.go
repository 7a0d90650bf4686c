package partner

import (
	"strings"

	"github.com/google/uuid"
	"github.com/smallbiz/backend/internal/domain/shared"
)

// Client represents a customer of the business
type Client struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// NewClient creates a new client with a server-assigned ID
func NewClient(name, email, phone string) (*Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client email is required")
	}
	if strings.TrimSpace(phone) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client phone is required")
	}
	return &Client{
		ID:    shared.NewID(),
		Name:  name,
		Email: email,
		Phone: phone,
	}, nil
}

// ClientPatch is a sparse overlay for partial updates. Nil fields keep the
// stored value; there is no way to blank a field through a patch.
type ClientPatch struct {
	Name  *string
	Email *string
	Phone *string
}

// ApplyPatch merges the overlay into the client
func (c *Client) ApplyPatch(p ClientPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
}
