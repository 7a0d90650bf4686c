package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smallbiz/backend/internal/domain/catalog"
)

// ProductService handles product CRUD operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, name string, description *string, price decimal.Decimal, stock int) (*catalog.Product, error) {
	product, err := catalog.NewProduct(name, description, price, stock)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// List retrieves all products ordered by name
func (s *ProductService) List(ctx context.Context) ([]catalog.Product, error) {
	return s.productRepo.FindAll(ctx)
}

// Replace overwrites every mutable field of an existing product. Unlike the
// patch operations on other entities, a product update is a full replacement:
// all fields must be supplied.
func (s *ProductService) Replace(ctx context.Context, id uuid.UUID, name string, description *string, price decimal.Decimal, stock int) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.Replace(name, description, price, stock); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}
