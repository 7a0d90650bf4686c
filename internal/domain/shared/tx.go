package shared

import "context"

// TxManager runs a function within a storage transaction. Repository calls made
// with the context passed to fn join the same transaction; if fn returns an
// error the transaction rolls back and nothing is visible to other callers.
type TxManager interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NopTxManager executes fn directly without any transaction. It stands in for
// the real manager in unit tests.
type NopTxManager struct{}

// InTx implements TxManager
func (NopTxManager) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
