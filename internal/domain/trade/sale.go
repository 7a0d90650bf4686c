package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smallbiz/backend/internal/domain/shared"
)

// Sale records a quantity of one product sold at the product's price at write
// time. TotalPrice is derived, never caller-supplied. ProductName is a
// join-derived read-only copy of the product's name.
type Sale struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TotalPrice derives a sale total from a unit price and quantity
func TotalPrice(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// NewSale creates a sale for the given product at the given unit price
func NewSale(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (*Sale, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sale quantity must be a positive integer")
	}
	return &Sale{
		ID:         shared.NewID(),
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: TotalPrice(unitPrice, quantity),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Reprice points the sale at a product and recomputes the total from that
// product's current unit price. CreatedAt is untouched.
func (s *Sale) Reprice(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Sale quantity must be a positive integer")
	}
	s.ProductID = productID
	s.Quantity = quantity
	s.TotalPrice = TotalPrice(unitPrice, quantity)
	return nil
}
