package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	"github.com/SscSPs/fish_sales_app/internal/core/services"
	"github.com/SscSPs/fish_sales_app/internal/dto"
	"github.com/SscSPs/fish_sales_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough-32"

func testTokenConfig() services.TokenConfig {
	return services.TokenConfig{Secret: testSecret, Expiry: time.Hour, Issuer: "fish-sales-test"}
}

func TestAuthService_Register(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := services.NewAuthService(repo, services.NewTokenService(testTokenConfig()))

	var saved domain.Company
	repo.On("SaveCompany", mock.Anything, mock.AnythingOfType("domain.Company")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Company) }).
		Return(nil)

	resp, err := svc.Register(context.Background(), dto.RegisterCompanyRequest{Name: "  Pisciculture   du Fleuve ", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "Pisciculture du Fleuve", saved.Name)
	assert.NotEqual(t, "s3cret-pass", saved.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("s3cret-pass", saved.PasswordHash))
	assert.Equal(t, saved.CompanyID, resp.CompanyID)

	claims, err := utils.ParseAndValidateJWT(resp.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, saved.CompanyID, claims.Subject)
	assert.Equal(t, "fish-sales-test", claims.Issuer)
	repo.AssertExpectations(t)
}

func TestAuthService_Register_Errors(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.RegisterCompanyRequest
		saveErr  error
		wantErr  error
		saveCall bool
	}{
		{name: "duplicate name", req: dto.RegisterCompanyRequest{Name: "Fleuve", Password: "password1"}, saveErr: apperrors.ErrDuplicate, wantErr: apperrors.ErrDuplicate, saveCall: true},
		{name: "blank name", req: dto.RegisterCompanyRequest{Name: "   ", Password: "password1"}, wantErr: apperrors.ErrValidation},
		{name: "password too long", req: dto.RegisterCompanyRequest{Name: "Fleuve", Password: strings.Repeat("x", 73)}, wantErr: apperrors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCompanyRepository)
			if tt.saveCall {
				repo.On("SaveCompany", mock.Anything, mock.Anything).Return(tt.saveErr)
			}
			svc := services.NewAuthService(repo, services.NewTokenService(testTokenConfig()))

			resp, err := svc.Register(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	company := &domain.Company{CompanyID: testCompanyID, Name: "Fleuve", PasswordHash: hash}

	repo := new(MockCompanyRepository)
	repo.On("FindCompanyByName", mock.Anything, "Fleuve").Return(company, nil)
	repo.On("FindCompanyByName", mock.Anything, "Unknown").Return(nil, apperrors.ErrNotFound)
	repo.On("FindCompanyByName", mock.Anything, "Broken").Return(nil, errors.New("db down"))
	svc := services.NewAuthService(repo, services.NewTokenService(testTokenConfig()))

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), dto.LoginRequest{Name: "Fleuve", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, testCompanyID, resp.CompanyID)
		assert.True(t, resp.ExpiresAt.After(time.Now()))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{Name: "Fleuve", Password: "battery-staple"})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{Name: "Unknown", Password: "whatever"})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("repository failure", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{Name: "Broken", Password: "whatever"})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
