package trade

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/smallbiz/backend/internal/domain/catalog"
	"github.com/smallbiz/backend/internal/domain/shared"
	"github.com/smallbiz/backend/internal/domain/trade"
)

// UpdateSaleInput carries the optional fields of a sale patch. An absent
// field keeps the stored value; either way the total is recomputed from the
// effective product's current price.
type UpdateSaleInput struct {
	ProductID *uuid.UUID
	Quantity  *int
}

// SaleService handles the sale workflow. The total price of a sale is always
// derived server-side from the referenced product's current price, both on
// create and on update, inside a single transaction that locks the product
// row so the price read and the sale write see one consistent snapshot.
type SaleService struct {
	saleRepo    trade.SaleRepository
	productRepo catalog.ProductRepository
	txManager   shared.TxManager
}

// NewSaleService creates a new SaleService
func NewSaleService(saleRepo trade.SaleRepository, productRepo catalog.ProductRepository, txManager shared.TxManager) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		txManager:   txManager,
	}
}

// Create records a sale of quantity units of the given product at its current
// price. A missing product is a bad reference from the caller, not a missing
// sale, so it surfaces as REFERENCE_NOT_FOUND rather than NOT_FOUND.
func (s *SaleService) Create(ctx context.Context, productID uuid.UUID, quantity int) (*trade.Sale, error) {
	var sale *trade.Sale
	err := s.txManager.InTx(ctx, func(ctx context.Context) error {
		product, err := s.productRepo.FindByIDForUpdate(ctx, productID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("REFERENCE_NOT_FOUND", "Product not found")
			}
			return err
		}
		sale, err = trade.NewSale(productID, quantity, product.Price)
		if err != nil {
			return err
		}
		sale.ProductName = product.Name
		return s.saleRepo.Save(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// GetByID retrieves a sale by ID
func (s *SaleService) GetByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	return s.saleRepo.FindByID(ctx, id)
}

// List retrieves all sales, newest first
func (s *SaleService) List(ctx context.Context) ([]trade.Sale, error) {
	return s.saleRepo.FindAll(ctx)
}

// Update patches a sale. Absent fields keep their stored values, but the
// total price is never patched directly: whatever the effective product and
// quantity end up being, the total is recomputed from that product's current
// price. Changing neither field still re-prices the sale.
func (s *SaleService) Update(ctx context.Context, id uuid.UUID, input UpdateSaleInput) (*trade.Sale, error) {
	var sale *trade.Sale
	err := s.txManager.InTx(ctx, func(ctx context.Context) error {
		existing, err := s.saleRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		productID := existing.ProductID
		if input.ProductID != nil {
			productID = *input.ProductID
		}
		quantity := existing.Quantity
		if input.Quantity != nil {
			quantity = *input.Quantity
		}

		product, err := s.productRepo.FindByIDForUpdate(ctx, productID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("REFERENCE_NOT_FOUND", "Product not found")
			}
			return err
		}
		if err := existing.Reprice(productID, quantity, product.Price); err != nil {
			return err
		}
		existing.ProductName = product.Name
		if err := s.saleRepo.Save(ctx, existing); err != nil {
			return err
		}
		sale = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// Delete removes a sale
func (s *SaleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.saleRepo.Delete(ctx, id)
}

// Count returns the total number of sales
func (s *SaleService) Count(ctx context.Context) (int64, error) {
	return s.saleRepo.Count(ctx)
}
