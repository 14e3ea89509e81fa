package services

import (
	portsrepo "github.com/SscSPs/fish_sales_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fish_sales_app/internal/core/ports/services"
	"github.com/SscSPs/fish_sales_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, observer OperationObserver) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenService(TokenConfig{
		Secret: cfg.JWTSecret,
		Expiry: cfg.JWTExpiryDuration,
		Issuer: cfg.JWTIssuer,
	})
	container.Auth = NewAuthService(repos.CompanyRepo, container.Token)
	container.Sale = NewSaleService(repos.SaleRepo, repos.CompanyRepo, WithSaleObserver(observer))
	container.ActionLog = NewActionLogService(repos.ActionLogRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.SaleRepo)

	return container
}
