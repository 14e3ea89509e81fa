package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fish_sales_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fish_sales_app/internal/core/ports/services"
	"github.com/SscSPs/fish_sales_app/internal/dto"
	"github.com/SscSPs/fish_sales_app/internal/utils"
)

// TokenConfig is the subset of configuration needed to sign access tokens.
type TokenConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// tokenService signs HS256 access tokens whose subject is the company ID.
type tokenService struct {
	cfg TokenConfig
	now func() time.Time
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg TokenConfig) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, now: time.Now}
}

// GenerateAccessToken creates a new JWT access token for the given company.
func (s *tokenService) GenerateAccessToken(ctx context.Context, company *domain.Company) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(company.CompanyID, s.cfg.Secret, s.cfg.Expiry, s.cfg.Issuer, s.now())
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}

var errInvalidCredentials = fmt.Errorf("%w: invalid company name or password", apperrors.ErrUnauthorized)

type authService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
	tokens      portssvc.TokenSvcFacade
}

// NewAuthService creates the company registration and login service.
func NewAuthService(companyRepo portsrepo.CompanyRepositoryFacade, tokens portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		BaseService: newBaseService(),
		companyRepo: companyRepo,
		tokens:      tokens,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a company and logs it in.
func (s *authService) Register(ctx context.Context, req dto.RegisterCompanyRequest) (*dto.LoginResponse, error) {
	name := strings.Join(strings.Fields(req.Name), " ")
	if name == "" {
		return nil, fmt.Errorf("%w: company name is required", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.Now()
	company := domain.Company{
		CompanyID:    s.NewID(),
		Name:         name,
		PasswordHash: hash,
	}
	company.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     company.CompanyID,
		LastUpdatedAt: now,
		LastUpdatedBy: company.CompanyID,
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Company name already taken", slog.String("name", name))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save company", slog.String("name", name))
		return nil, fmt.Errorf("failed to register company: %w", err)
	}

	s.LogInfo(ctx, "Company registered", slog.String("company_id", company.CompanyID))
	return s.issue(ctx, &company)
}

// Login checks the password of a company and returns a fresh access token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	name := strings.Join(strings.Fields(req.Name), " ")
	company, err := s.companyRepo.FindCompanyByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Login for unknown company", slog.String("name", name))
			return nil, errInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up company", slog.String("name", name))
		return nil, fmt.Errorf("failed to look up company: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, company.PasswordHash) {
		s.LogWarn(ctx, "Login with wrong password", slog.String("company_id", company.CompanyID))
		return nil, errInvalidCredentials
	}

	return s.issue(ctx, company)
}

func (s *authService) issue(ctx context.Context, company *domain.Company) (*dto.LoginResponse, error) {
	token, expiresAt, err := s.tokens.GenerateAccessToken(ctx, company)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("company_id", company.CompanyID))
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt, CompanyID: company.CompanyID}, nil
}
