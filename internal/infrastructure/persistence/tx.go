package persistence

import (
	"context"

	"github.com/smallbiz/backend/internal/domain/shared"
	"gorm.io/gorm"
)

type txKey struct{}

// GormTxManager implements shared.TxManager on top of GORM transactions.
// The transaction handle travels in the context; repositories built on the
// same *gorm.DB pick it up via dbFromContext and join the transaction.
type GormTxManager struct {
	db *gorm.DB
}

// NewGormTxManager creates a new GormTxManager
func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

// InTx implements shared.TxManager
func (m *GormTxManager) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFromContext returns the transaction carried by ctx, or fallback when the
// call is not running inside InTx.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback
}

var _ shared.TxManager = (*GormTxManager)(nil)
