package repositories

import (
	"context"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
)

// CompanyRepositoryFacade defines persistence operations for companies.
type CompanyRepositoryFacade interface {
	// SaveCompany inserts a new company. A taken name yields apperrors.ErrDuplicate.
	SaveCompany(ctx context.Context, company domain.Company) error
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	FindCompanyByName(ctx context.Context, name string) (*domain.Company, error)
}
