package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fish_sales_app/internal/core/ports/repositories"
	"github.com/SscSPs/fish_sales_app/internal/models"
	"github.com/SscSPs/fish_sales_app/internal/utils/mapping"
	"github.com/SscSPs/fish_sales_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxActionLogRepository struct {
	BaseRepository
}

func newPgxActionLogRepository(pool *pgxpool.Pool) portsrepo.ActionLogReader {
	return &PgxActionLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ActionLogReader = (*PgxActionLogRepository)(nil)

// ListActionLogs returns audit entries newest first, paginated on (created_at, action_log_id).
func (r *PgxActionLogRepository) ListActionLogs(ctx context.Context, companyID string, filter domain.ActionLogFilter, limit int, nextToken *string) ([]domain.ActionLog, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	fetchLimit := limit + 1

	conds := []string{"company_id = $1"}
	args := []any{companyID}
	if filter.SaleID != "" {
		args = append(args, filter.SaleID)
		conds = append(conds, fmt.Sprintf("sale_id = $%d", len(args)))
	}
	if filter.ActionType != "" {
		args = append(args, string(filter.ActionType))
		conds = append(conds, fmt.Sprintf("action_type = $%d", len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeTimeIDToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		args = append(args, lastCreatedAt, lastID)
		conds = append(conds, fmt.Sprintf("(created_at, action_log_id) < ($%d, $%d)", len(args)-1, len(args)))
	}
	args = append(args, fetchLimit)

	query := `
		SELECT action_log_id, action_type, sale_id, sale_data, motif, company_id, company_name, performed_by, created_at
		FROM action_logs
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY created_at DESC, action_log_id DESC
		LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapError(err, "list action logs")
	}
	defer rows.Close()

	logs := []models.ActionLog{}
	for rows.Next() {
		var m models.ActionLog
		if err := rows.Scan(
			&m.ActionLogID,
			&m.ActionType,
			&m.SaleID,
			&m.SaleData,
			&m.Motif,
			&m.CompanyID,
			&m.CompanyName,
			&m.PerformedBy,
			&m.CreatedAt,
		); err != nil {
			return nil, nil, mapError(err, "scan action log")
		}
		logs = append(logs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, mapError(err, "iterate action logs")
	}

	var nextTokenVal *string
	if len(logs) > limit {
		last := logs[limit-1]
		token := pagination.EncodeTimeIDToken(last.CreatedAt, last.ActionLogID)
		nextTokenVal = &token
		logs = logs[:limit]
	}

	out := make([]domain.ActionLog, len(logs))
	for i, m := range logs {
		out[i] = mapping.ToDomainActionLog(m)
	}
	return out, nextTokenVal, nil
}
