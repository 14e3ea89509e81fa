package services

import (
	"context"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	"github.com/SscSPs/fish_sales_app/internal/dto"
)

// SaleReaderSvc defines read operations for sales
type SaleReaderSvc interface {
	GetSale(ctx context.Context, companyID, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context, companyID string, params dto.ListSalesParams) (*dto.ListSalesResponse, error)

	// ListClientBalances returns the client's sales that still carry a debt.
	ListClientBalances(ctx context.Context, companyID, clientName string) ([]domain.Sale, error)

	// ListClientCredits returns the client's sales that hold a credit.
	ListClientCredits(ctx context.Context, companyID, clientName string) ([]domain.Sale, error)
}

// SaleWriterSvc defines the ledger mutations. Each one runs in its own database transaction.
type SaleWriterSvc interface {
	CreateSale(ctx context.Context, companyID string, req dto.SaleRequest) (*domain.Sale, error)
	Deliver(ctx context.Context, companyID, saleID string, req dto.DeliverRequest) (*domain.Sale, error)
	Pay(ctx context.Context, companyID, saleID string, req dto.AmountRequest) (*domain.Sale, error)
	Settle(ctx context.Context, companyID, saleID string) (*domain.Sale, error)
	Refund(ctx context.Context, companyID, saleID string, req dto.AmountRequest) (*domain.Sale, error)

	// Compensate moves part of a credit sale's overpayment onto a debt sale of the same client.
	Compensate(ctx context.Context, companyID string, req dto.CompensateRequest) (debt *domain.Sale, credit *domain.Sale, err error)

	// EditSale snapshots the sale into the audit log and replaces its fields.
	EditSale(ctx context.Context, companyID, saleID string, req dto.EditSaleRequest) (*domain.Sale, error)

	// DeleteSale snapshots the sale into the audit log and removes it.
	DeleteSale(ctx context.Context, companyID, saleID, motif string) error
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
}

// ActionLogSvc lists the audit trail of edits and deletions.
type ActionLogSvc interface {
	ListActionLogs(ctx context.Context, companyID string, params dto.ListActionLogsParams) (*dto.ListActionLogsResponse, error)
}
