package repositories

import (
	"context"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
)

// ReportingRepository defines aggregate queries over the sale ledger
type ReportingRepository interface {
	// GetLedgerTotals sums every sale matching filter.
	GetLedgerTotals(ctx context.Context, companyID string, filter domain.SaleFilter) (domain.LedgerTotals, error)

	// GetFishTypeTotals returns the same totals grouped by fish type.
	GetFishTypeTotals(ctx context.Context, companyID string, filter domain.SaleFilter) ([]domain.FishTypeTotals, error)

	// GetClientBoard returns per-client sums of debts or credits, largest first.
	GetClientBoard(ctx context.Context, companyID string, kind domain.BalanceKind) ([]domain.ClientBalance, error)
}
