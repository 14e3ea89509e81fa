package pgsql

import (
	"context"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fish_sales_app/internal/core/ports/repositories"
	"github.com/SscSPs/fish_sales_app/internal/models"
	"github.com/SscSPs/fish_sales_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCompanyRepository implements portsrepo.CompanyRepositoryFacade
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companyColumns = `company_id, name, password_hash, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.Name,
		m.PasswordHash,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return mapError(err, "insert company "+m.Name)
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE company_id = $1;`, companyID)
	return scanCompany(row, "find company "+companyID)
}

// FindCompanyByName matches case-insensitively, like the unique index on LOWER(name).
func (r *PgxCompanyRepository) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE LOWER(name) = LOWER($1);`, name)
	return scanCompany(row, "find company "+name)
}

func scanCompany(row pgx.Row, what string) (*domain.Company, error) {
	var m models.Company
	if err := row.Scan(
		&m.CompanyID,
		&m.Name,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, mapError(err, what)
	}
	company := mapping.ToDomainCompany(m)
	return &company, nil
}
