package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smallbiz/backend/internal/domain/trade"
)

// SaleModel is the persistence model for the Sale domain entity. The sales
// table has no product_name column; reads join it from products.
type SaleModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// SaleModelFromDomain creates a persistence model from a domain Sale entity.
// The join-derived ProductName is intentionally not carried.
func SaleModelFromDomain(s *trade.Sale) *SaleModel {
	return &SaleModel{
		ID:         s.ID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice,
		CreatedAt:  s.CreatedAt,
	}
}

// SaleRow is the read projection of a sale joined with its product name.
type SaleRow struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	TotalPrice  decimal.Decimal
	CreatedAt   time.Time
}

// ToDomain converts the read projection to a domain Sale entity.
func (r *SaleRow) ToDomain() *trade.Sale {
	return &trade.Sale{
		ID:          r.ID,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		TotalPrice:  r.TotalPrice,
		CreatedAt:   r.CreatedAt,
	}
}
