package services

import (
	"context"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
)

// ReportingService defines the read-side aggregations of the ledger
type ReportingService interface {
	// GetSummary totals the sales matching filter, with a per-fish-type breakdown.
	GetSummary(ctx context.Context, companyID string, filter domain.SaleFilter) (*domain.Summary, error)

	// GetBoard ranks clients by open debt or by held credit.
	GetBoard(ctx context.Context, companyID string, kind domain.BalanceKind) ([]domain.ClientBalance, error)

	// GetClientAnalysis gathers the totals, open debts and credits of one client.
	GetClientAnalysis(ctx context.Context, companyID, clientName string) (*domain.ClientAnalysis, error)
}
