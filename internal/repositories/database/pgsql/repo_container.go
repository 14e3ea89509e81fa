package pgsql

import (
	portsrepo "github.com/SscSPs/fish_sales_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	saleRepo := newPgxSaleRepository(dbPool)
	actionLogRepo := newPgxActionLogRepository(dbPool)
	companyRepo := newPgxCompanyRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		SaleRepo:      saleRepo,
		ActionLogRepo: actionLogRepo,
		CompanyRepo:   companyRepo,
		ReportingRepo: reportingRepo,
	}
}
