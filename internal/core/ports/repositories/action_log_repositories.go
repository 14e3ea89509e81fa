package repositories

import (
	"context"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
)

// ActionLogReader lists audit entries. Entries are only ever written through SaleTxStore.
type ActionLogReader interface {
	ListActionLogs(ctx context.Context, companyID string, filter domain.ActionLogFilter, limit int, nextToken *string) ([]domain.ActionLog, *string, error)
}
