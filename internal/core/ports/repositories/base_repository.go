package repositories

import (
	"context"
)

// TransactionManager runs a unit of work inside a single database transaction.
type TransactionManager interface {
	// WithinTx begins a transaction, hands fn a store bound to it and commits when fn
	// returns nil. Any error from fn rolls the transaction back and is returned unchanged.
	WithinTx(ctx context.Context, fn func(tx SaleTxStore) error) error
}
