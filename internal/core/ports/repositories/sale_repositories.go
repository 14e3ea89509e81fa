package repositories

import (
	"context"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a sale owned by companyID.
	FindSaleByID(ctx context.Context, companyID, saleID string) (*domain.Sale, error)

	// ListSales retrieves a filtered page of sales ordered by date then creation time, newest first.
	// It returns the sales, a token for the next page, and an error.
	ListSales(ctx context.Context, companyID string, filter domain.SaleFilter, limit int, nextToken *string) ([]domain.Sale, *string, error)

	// ListClientSalesByBalance returns the client's sales holding a debt or a credit, oldest first.
	ListClientSalesByBalance(ctx context.Context, companyID, clientName string, kind domain.BalanceKind) ([]domain.Sale, error)
}

// SaleWriter defines write operations that do not need row locks
type SaleWriter interface {
	SaveSale(ctx context.Context, sale domain.Sale) error
}

// SaleTxStore is the set of operations available inside a ledger transaction.
type SaleTxStore interface {
	// FindSalesForUpdate locks the given sales in ascending id order and returns them keyed by id.
	// Missing ids are simply absent from the map.
	FindSalesForUpdate(ctx context.Context, companyID string, saleIDs []string) (map[string]domain.Sale, error)

	// UpdateSale writes sale back if the stored version still equals sale.Version and
	// bumps the stored version. A lost race surfaces as apperrors.ErrConflict.
	UpdateSale(ctx context.Context, sale domain.Sale) error

	// DeleteSale removes the sale if its stored version still equals version.
	DeleteSale(ctx context.Context, companyID, saleID string, version int64) error

	// SaveActionLog appends an audit entry.
	SaveActionLog(ctx context.Context, log domain.ActionLog) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

// SaleRepositoryWithTx extends SaleRepositoryFacade with transaction capabilities
type SaleRepositoryWithTx interface {
	SaleRepositoryFacade
	TransactionManager
}
