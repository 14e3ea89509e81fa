package handlers_test

import (
	"context"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	portssvc "github.com/SscSPs/fish_sales_app/internal/core/ports/services"
	"github.com/SscSPs/fish_sales_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) GetSale(ctx context.Context, companyID, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, companyID, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) ListSales(ctx context.Context, companyID string, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListSalesResponse), args.Error(1)
}

func (m *MockSaleService) ListClientBalances(ctx context.Context, companyID, clientName string) ([]domain.Sale, error) {
	args := m.Called(ctx, companyID, clientName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleService) ListClientCredits(ctx context.Context, companyID, clientName string) ([]domain.Sale, error) {
	args := m.Called(ctx, companyID, clientName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleService) CreateSale(ctx context.Context, companyID string, req dto.SaleRequest) (*domain.Sale, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) Deliver(ctx context.Context, companyID, saleID string, req dto.DeliverRequest) (*domain.Sale, error) {
	args := m.Called(ctx, companyID, saleID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) Pay(ctx context.Context, companyID, saleID string, req dto.AmountRequest) (*domain.Sale, error) {
	args := m.Called(ctx, companyID, saleID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) Settle(ctx context.Context, companyID, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, companyID, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) Refund(ctx context.Context, companyID, saleID string, req dto.AmountRequest) (*domain.Sale, error) {
	args := m.Called(ctx, companyID, saleID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) Compensate(ctx context.Context, companyID string, req dto.CompensateRequest) (*domain.Sale, *domain.Sale, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Sale), args.Get(1).(*domain.Sale), args.Error(2)
}

func (m *MockSaleService) EditSale(ctx context.Context, companyID, saleID string, req dto.EditSaleRequest) (*domain.Sale, error) {
	args := m.Called(ctx, companyID, saleID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) DeleteSale(ctx context.Context, companyID, saleID, motif string) error {
	args := m.Called(ctx, companyID, saleID, motif)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetSummary(ctx context.Context, companyID string, filter domain.SaleFilter) (*domain.Summary, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

func (m *MockReportingService) GetBoard(ctx context.Context, companyID string, kind domain.BalanceKind) ([]domain.ClientBalance, error) {
	args := m.Called(ctx, companyID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientBalance), args.Error(1)
}

func (m *MockReportingService) GetClientAnalysis(ctx context.Context, companyID, clientName string) (*domain.ClientAnalysis, error) {
	args := m.Called(ctx, companyID, clientName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientAnalysis), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock ActionLogService ---
type MockActionLogService struct {
	mock.Mock
}

func (m *MockActionLogService) ListActionLogs(ctx context.Context, companyID string, params dto.ListActionLogsParams) (*dto.ListActionLogsResponse, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListActionLogsResponse), args.Error(1)
}

var _ portssvc.ActionLogSvc = (*MockActionLogService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterCompanyRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)
