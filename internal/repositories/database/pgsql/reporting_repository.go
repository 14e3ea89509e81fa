package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fish_sales_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface.
// It only reads, so it runs on the pool without transactions.
type reportingRepository struct {
	db querier
}

// NewReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{db: db}
}

// totalsSelect computes LedgerTotals; SUM over no rows is NULL, hence the COALESCEs.
const totalsSelect = `
	COUNT(*) AS sale_count,
	COALESCE(SUM(quantity), 0) AS total_quantity,
	COALESCE(SUM(delivered), 0) AS total_delivered,
	COALESCE(SUM(amount), 0) AS total_amount,
	COALESCE(SUM(payment), 0) AS total_payment,
	COALESCE(SUM(balance), 0) AS total_balance,
	COALESCE(SUM(CASE WHEN balance > 0 THEN balance ELSE 0 END), 0) AS total_debt,
	COALESCE(SUM(CASE WHEN balance < 0 THEN -balance ELSE 0 END), 0) AS total_credit`

func totalsDest(t *domain.LedgerTotals) []any {
	return []any{
		&t.SaleCount,
		&t.TotalQuantity,
		&t.TotalDelivered,
		&t.TotalAmount,
		&t.TotalPayment,
		&t.TotalBalance,
		&t.TotalDebt,
		&t.TotalCredit,
	}
}

// GetLedgerTotals sums every sale matching filter.
func (r *reportingRepository) GetLedgerTotals(ctx context.Context, companyID string, filter domain.SaleFilter) (domain.LedgerTotals, error) {
	where, args := saleFilterClause(companyID, filter)
	query := `SELECT ` + totalsSelect + ` FROM sales WHERE ` + where + `;`

	var totals domain.LedgerTotals
	if err := r.db.QueryRow(ctx, query, args...).Scan(totalsDest(&totals)...); err != nil {
		return domain.LedgerTotals{}, mapError(err, "compute ledger totals")
	}
	return totals, nil
}

// GetFishTypeTotals returns the totals grouped by fish type.
func (r *reportingRepository) GetFishTypeTotals(ctx context.Context, companyID string, filter domain.SaleFilter) ([]domain.FishTypeTotals, error) {
	where, args := saleFilterClause(companyID, filter)
	query := `SELECT fish_type, ` + totalsSelect + ` FROM sales WHERE ` + where + `
		GROUP BY fish_type
		ORDER BY fish_type;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "query fish type totals")
	}
	defer rows.Close()

	result := []domain.FishTypeTotals{}
	for rows.Next() {
		var row domain.FishTypeTotals
		var fishType string
		dest := append([]any{&fishType}, totalsDest(&row.LedgerTotals)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, mapError(err, "scan fish type totals")
		}
		row.FishType = domain.FishType(fishType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate fish type totals")
	}
	return result, nil
}

// GetClientBoard returns per-client sums of debts or credits, largest first.
// Credits are reported as positive amounts.
func (r *reportingRepository) GetClientBoard(ctx context.Context, companyID string, kind domain.BalanceKind) ([]domain.ClientBalance, error) {
	var query string
	switch kind {
	case domain.BalanceDebt:
		query = `
			SELECT client_name, SUM(balance) AS total, COUNT(*) AS sale_count
			FROM sales
			WHERE company_id = $1 AND balance > 0
			GROUP BY client_name
			ORDER BY total DESC, client_name;`
	case domain.BalanceCredit:
		query = `
			SELECT client_name, SUM(-balance) AS total, COUNT(*) AS sale_count
			FROM sales
			WHERE company_id = $1 AND balance < 0
			GROUP BY client_name
			ORDER BY total DESC, client_name;`
	default:
		return nil, fmt.Errorf("%w: unknown board %q", apperrors.ErrValidation, kind)
	}

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, mapError(err, "query client board")
	}

	board, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ClientBalance, error) {
		var cb domain.ClientBalance
		err := row.Scan(&cb.ClientName, &cb.Total, &cb.SaleCount)
		return cb, err
	})
	if err != nil {
		return nil, mapError(err, "scan client board")
	}
	return board, nil
}
