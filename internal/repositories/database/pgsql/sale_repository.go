package pgsql

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fish_sales_app/internal/core/ports/repositories"
	"github.com/SscSPs/fish_sales_app/internal/models"
	"github.com/SscSPs/fish_sales_app/internal/utils/mapping"
	"github.com/SscSPs/fish_sales_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const saleColumns = `sale_id, company_id, client_name, fish_type, sale_date, quantity, delivered,
	unit_price, amount, payment, balance, settled, observation, version,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryWithTx {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryWithTx
var _ portsrepo.SaleRepositoryWithTx = (*PgxSaleRepository)(nil)

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.CompanyID,
		&m.ClientName,
		&m.FishType,
		&m.SaleDate,
		&m.Quantity,
		&m.Delivered,
		&m.UnitPrice,
		&m.Amount,
		&m.Payment,
		&m.Balance,
		&m.Settled,
		&m.Observation,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectSales(rows pgx.Rows) ([]models.Sale, error) {
	defer rows.Close()
	sales := []models.Sale{}
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, m)
	}
	return sales, rows.Err()
}

// SaveSale inserts a new sale row.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SaleID,
		m.CompanyID,
		m.ClientName,
		m.FishType,
		m.SaleDate,
		m.Quantity,
		m.Delivered,
		m.UnitPrice,
		m.Amount,
		m.Payment,
		m.Balance,
		m.Settled,
		m.Observation,
		m.Version,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return mapError(err, "insert sale "+m.SaleID)
}

// FindSaleByID retrieves a sale owned by companyID.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, companyID, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE company_id = $1 AND sale_id = $2;`
	m, err := scanSale(r.Pool.QueryRow(ctx, query, companyID, saleID))
	if err != nil {
		return nil, mapError(err, "find sale "+saleID)
	}
	sale := mapping.ToDomainSale(m)
	return &sale, nil
}

// ListSales retrieves a page of sales using keyset pagination over
// (sale_date, created_at, sale_id), all descending.
func (r *PgxSaleRepository) ListSales(ctx context.Context, companyID string, filter domain.SaleFilter, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	where, args := saleFilterClause(companyID, filter)

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, lastID, err := pagination.DecodeSaleToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		args = append(args, lastDate, lastCreatedAt, lastID)
		n := len(args)
		where += fmt.Sprintf(" AND (sale_date, created_at, sale_id) < ($%d, $%d, $%d)", n-2, n-1, n)
	}

	args = append(args, fetchLimit)
	query := `SELECT ` + saleColumns + ` FROM sales WHERE ` + where +
		` ORDER BY sale_date DESC, created_at DESC, sale_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapError(err, "list sales")
	}
	sales, err := collectSales(rows)
	if err != nil {
		return nil, nil, mapError(err, "scan sales")
	}

	var nextTokenVal *string
	if len(sales) > limit {
		last := sales[limit-1]
		token := pagination.EncodeSaleToken(last.SaleDate, last.CreatedAt, last.SaleID)
		nextTokenVal = &token
		sales = sales[:limit]
	}
	return mapping.ToDomainSaleSlice(sales), nextTokenVal, nil
}

// saleFilterClause builds the WHERE conditions shared by listings and aggregates.
func saleFilterClause(companyID string, filter domain.SaleFilter) (string, []any) {
	conds := []string{"company_id = $1"}
	args := []any{companyID}
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.FishType != "" {
		add("fish_type = $%d", string(filter.FishType))
	}
	if filter.ClientName != "" {
		add("client_name = $%d", filter.ClientName)
	}
	if filter.StartDate != nil {
		add("sale_date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("sale_date <= $%d", *filter.EndDate)
	}
	return strings.Join(conds, " AND "), args
}

// ListClientSalesByBalance returns the client's open debts or credits, oldest first.
func (r *PgxSaleRepository) ListClientSalesByBalance(ctx context.Context, companyID, clientName string, kind domain.BalanceKind) ([]domain.Sale, error) {
	var cond string
	switch kind {
	case domain.BalanceDebt:
		cond = "balance > 0"
	case domain.BalanceCredit:
		cond = "balance < 0"
	default:
		return nil, fmt.Errorf("%w: unknown balance kind %q", apperrors.ErrValidation, kind)
	}

	query := `SELECT ` + saleColumns + ` FROM sales
		WHERE company_id = $1 AND client_name = $2 AND ` + cond + `
		ORDER BY sale_date, created_at, sale_id;`
	rows, err := r.Pool.Query(ctx, query, companyID, clientName)
	if err != nil {
		return nil, mapError(err, "list client sales")
	}
	sales, err := collectSales(rows)
	if err != nil {
		return nil, mapError(err, "scan client sales")
	}
	return mapping.ToDomainSaleSlice(sales), nil
}

// WithinTx runs fn with a store bound to a single database transaction.
func (r *PgxSaleRepository) WithinTx(ctx context.Context, fn func(tx portsrepo.SaleTxStore) error) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		return fn(&pgxSaleTx{q: tx})
	})
}

// pgxSaleTx implements portsrepo.SaleTxStore on top of an open transaction.
type pgxSaleTx struct {
	q querier
}

var _ portsrepo.SaleTxStore = (*pgxSaleTx)(nil)

// FindSalesForUpdate locks rows in ascending id order so that two transactions
// touching the same pair of sales always wait on each other in the same order.
func (t *pgxSaleTx) FindSalesForUpdate(ctx context.Context, companyID string, saleIDs []string) (map[string]domain.Sale, error) {
	ids := append([]string(nil), saleIDs...)
	sort.Strings(ids)

	query := `SELECT ` + saleColumns + ` FROM sales
		WHERE company_id = $1 AND sale_id = ANY($2)
		ORDER BY sale_id
		FOR UPDATE;`
	rows, err := t.q.Query(ctx, query, companyID, ids)
	if err != nil {
		return nil, mapError(err, "lock sales")
	}
	sales, err := collectSales(rows)
	if err != nil {
		return nil, mapError(err, "scan locked sales")
	}

	out := make(map[string]domain.Sale, len(sales))
	for _, m := range sales {
		out[m.SaleID] = mapping.ToDomainSale(m)
	}
	return out, nil
}

// UpdateSale writes every mutable column back under an optimistic version check.
func (t *pgxSaleTx) UpdateSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `
		UPDATE sales SET
			client_name = $3, fish_type = $4, sale_date = $5, quantity = $6, delivered = $7,
			unit_price = $8, amount = $9, payment = $10, balance = $11, settled = $12,
			observation = $13, last_updated_at = $14, last_updated_by = $15,
			version = version + 1
		WHERE sale_id = $1 AND company_id = $2 AND version = $16;
	`
	tag, err := t.q.Exec(ctx, query,
		m.SaleID,
		m.CompanyID,
		m.ClientName,
		m.FishType,
		m.SaleDate,
		m.Quantity,
		m.Delivered,
		m.UnitPrice,
		m.Amount,
		m.Payment,
		m.Balance,
		m.Settled,
		m.Observation,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return mapError(err, "update sale "+m.SaleID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: sale %s was modified concurrently", apperrors.ErrConflict, m.SaleID)
	}
	return nil
}

func (t *pgxSaleTx) DeleteSale(ctx context.Context, companyID, saleID string, version int64) error {
	tag, err := t.q.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1 AND company_id = $2 AND version = $3;`, saleID, companyID, version)
	if err != nil {
		return mapError(err, "delete sale "+saleID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: sale %s was modified concurrently", apperrors.ErrConflict, saleID)
	}
	return nil
}

// SaveActionLog inserts the audit entry in the same transaction as the change it describes.
func (t *pgxSaleTx) SaveActionLog(ctx context.Context, log domain.ActionLog) error {
	m := mapping.ToModelActionLog(log)
	query := `
		INSERT INTO action_logs (action_log_id, action_type, sale_id, sale_data, motif, company_id, company_name, performed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := t.q.Exec(ctx, query,
		m.ActionLogID,
		m.ActionType,
		m.SaleID,
		m.SaleData,
		m.Motif,
		m.CompanyID,
		m.CompanyName,
		m.PerformedBy,
		m.CreatedAt,
	)
	return mapError(err, "insert action log for sale "+m.SaleID)
}
