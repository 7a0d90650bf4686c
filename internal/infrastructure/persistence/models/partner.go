package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/smallbiz/backend/internal/domain/partner"
)

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(200);not null"`
	Email string    `gorm:"type:varchar(200);not null"`
	Phone string    `gorm:"type:varchar(50);not null"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Phone: m.Phone,
	}
}

// ClientModelFromDomain creates a persistence model from a domain Client entity.
func ClientModelFromDomain(c *partner.Client) *ClientModel {
	return &ClientModel{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}

// SupplierModel is the persistence model for the Supplier domain entity.
type SupplierModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Email     *string   `gorm:"type:varchar(200)"`
	Phone     *string   `gorm:"type:varchar(50)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
	}
}

// SupplierModelFromDomain creates a persistence model from a domain Supplier entity.
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	return &SupplierModel{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
	}
}
