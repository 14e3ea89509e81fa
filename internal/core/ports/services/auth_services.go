package services

import (
	"context"
	"time"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	"github.com/SscSPs/fish_sales_app/internal/dto"
)

// TokenSvcFacade issues signed access tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, company *domain.Company) (string, time.Time, error)
}

// AuthSvcFacade registers companies and checks their credentials.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterCompanyRequest) (*dto.LoginResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
