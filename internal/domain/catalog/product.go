package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smallbiz/backend/internal/domain/shared"
)

// Product represents an item in the catalog. Price is the current selling
// price; sales snapshot it into their total at write time.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// NewProduct creates a new product with a server-assigned ID
func NewProduct(name string, description *string, price decimal.Decimal, stock int) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product stock cannot be negative")
	}
	return &Product{
		ID:          shared.NewID(),
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	}, nil
}

// Replace overwrites every mutable field. Product updates are full-replace,
// not patch: all fields are required on update.
func (p *Product) Replace(name string, description *string, price decimal.Decimal, stock int) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	if stock < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Product stock cannot be negative")
	}
	p.Name = name
	p.Description = description
	p.Price = price
	p.Stock = stock
	return nil
}
