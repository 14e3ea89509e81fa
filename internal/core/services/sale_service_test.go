package services_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	portssvc "github.com/SscSPs/fish_sales_app/internal/core/ports/services"
	"github.com/SscSPs/fish_sales_app/internal/core/services"
	"github.com/SscSPs/fish_sales_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testCompanyID  = "0b6c3f9e-5d1a-4f7e-9c2b-8a4d6e1f3a70"
	otherCompanyID = "6f2e1d0c-9b8a-4765-8432-10fedcba9876"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

type SaleServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	store       *memSaleStore
	companyRepo *MockCompanyRepository
	observer    *recordingObserver
	service     portssvc.SaleSvcFacade
	now         time.Time
}

func (s *SaleServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMemSaleStore()
	s.companyRepo = new(MockCompanyRepository)
	s.observer = &recordingObserver{}
	s.now = time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)
	s.service = services.NewSaleService(s.store, s.companyRepo,
		services.WithSaleObserver(s.observer),
		services.WithSaleClock(func() time.Time { return s.now }))

	s.companyRepo.On("FindCompanyByID", mock.Anything, testCompanyID).
		Return(&domain.Company{CompanyID: testCompanyID, Name: "Pisciculture du Fleuve"}, nil).Maybe()
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}

func saleRequest(client, qty, price, payment string) dto.SaleRequest {
	return dto.SaleRequest{
		ClientName: client,
		FishType:   domain.Tilapia,
		Date:       "2024-03-14",
		Quantity:   dec(qty),
		UnitPrice:  dec(price),
		Payment:    dec(payment),
	}
}

// seed creates a sale through the service so it has a real id and version.
func (s *SaleServiceTestSuite) seed(client, qty, price, payment string) *domain.Sale {
	sale, err := s.service.CreateSale(s.ctx, testCompanyID, saleRequest(client, qty, price, payment))
	s.Require().NoError(err)
	return sale
}

func (s *SaleServiceTestSuite) stored(id string) domain.Sale {
	sale, ok := s.store.get(id)
	s.Require().True(ok, "sale %s should exist", id)
	return sale
}

func (s *SaleServiceTestSuite) TestCreateSale() {
	sale := s.seed("Ndèye Fall", "100", "500", "20000")

	s.NotEmpty(sale.SaleID)
	s.Equal("NDEYEFALL", sale.ClientName)
	s.True(sale.Amount.Equal(dec("50000")))
	s.True(sale.Balance.Equal(dec("30000")))
	s.Equal(int64(1), sale.Version)
	s.Equal(testCompanyID, sale.CompanyID)
	s.Equal(s.now, sale.CreatedAt)
	s.Equal(sale.Amount, s.stored(sale.SaleID).Amount)
}

func (s *SaleServiceTestSuite) TestCreateSale_Validation() {
	tests := []struct {
		name string
		req  dto.SaleRequest
	}{
		{"zero quantity", saleRequest("AWA", "0", "500", "0")},
		{"negative payment", saleRequest("AWA", "1", "500", "-1")},
		{"bad client", saleRequest("A.W.A", "1", "500", "0")},
		{"bad date", func() dto.SaleRequest { r := saleRequest("AWA", "1", "500", "0"); r.Date = "14/03/2024"; return r }()},
		{"delivered above quantity", func() dto.SaleRequest { r := saleRequest("AWA", "1", "500", "0"); r.Delivered = dec("2"); return r }()},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.CreateSale(s.ctx, testCompanyID, tt.req)
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	s.Empty(s.store.sales)
}

func (s *SaleServiceTestSuite) TestDeliver() {
	sale := s.seed("AWA", "10", "1000", "0")

	_, err := s.service.Deliver(s.ctx, testCompanyID, sale.SaleID, dto.DeliverRequest{Qty: dec("12")})
	s.ErrorIs(err, apperrors.ErrValidation)
	stored := s.stored(sale.SaleID)
	s.True(stored.Delivered.IsZero())
	s.Equal(int64(1), stored.Version)

	updated, err := s.service.Deliver(s.ctx, testCompanyID, sale.SaleID, dto.DeliverRequest{Qty: dec("10"), Note: "truck 2"})
	s.Require().NoError(err)
	s.True(updated.Delivered.Equal(dec("10")))
	s.Equal("truck 2", updated.Observation)
	s.Equal(int64(2), updated.Version)
	s.Equal(updated.Version, s.stored(sale.SaleID).Version)
}

func (s *SaleServiceTestSuite) TestPaySettleRefund() {
	sale := s.seed("AWA", "100", "500", "0")

	paid, err := s.service.Pay(s.ctx, testCompanyID, sale.SaleID, dto.AmountRequest{Amount: dec("30000"), Note: "cash"})
	s.Require().NoError(err)
	s.True(paid.Balance.Equal(dec("20000")))

	settled, err := s.service.Settle(s.ctx, testCompanyID, sale.SaleID)
	s.Require().NoError(err)
	s.True(settled.Balance.IsZero())
	s.True(settled.Settled)

	_, err = s.service.Settle(s.ctx, testCompanyID, sale.SaleID)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.Refund(s.ctx, testCompanyID, sale.SaleID, dto.AmountRequest{Amount: dec("1")})
	s.ErrorIs(err, domain.ErrNoCredit)

	credit, err := s.service.Pay(s.ctx, testCompanyID, sale.SaleID, dto.AmountRequest{Amount: dec("5000")})
	s.Require().NoError(err)
	s.True(credit.Balance.Equal(dec("-5000")))

	refunded, err := s.service.Refund(s.ctx, testCompanyID, sale.SaleID, dto.AmountRequest{Amount: dec("2000"), Note: "returned cash"})
	s.Require().NoError(err)
	s.True(refunded.Balance.Equal(dec("-3000")))
	s.Equal("cash | returned cash", refunded.Observation)
	s.Equal(int64(5), refunded.Version)
}

func (s *SaleServiceTestSuite) TestMutation_OtherCompanyIsNotFound() {
	sale := s.seed("AWA", "1", "100", "0")

	_, err := s.service.Pay(s.ctx, otherCompanyID, sale.SaleID, dto.AmountRequest{Amount: dec("10")})
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.service.GetSale(s.ctx, otherCompanyID, sale.SaleID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.True(s.stored(sale.SaleID).Payment.IsZero())
}

func (s *SaleServiceTestSuite) TestScenarioA_ThroughService() {
	credit := s.seed("MOUSSA", "100", "500", "0")
	_, err := s.service.Pay(s.ctx, testCompanyID, credit.SaleID, dto.AmountRequest{Amount: dec("60000")})
	s.Require().NoError(err)
	afterRefund, err := s.service.Refund(s.ctx, testCompanyID, credit.SaleID, dto.AmountRequest{Amount: dec("4000")})
	s.Require().NoError(err)
	s.True(afterRefund.Balance.Equal(dec("-6000")))

	debt := s.seed("MOUSSA", "12", "500", "0")

	d, c, err := s.service.Compensate(s.ctx, testCompanyID, dto.CompensateRequest{
		DebtID: debt.SaleID, CreditID: credit.SaleID, AmountToUse: dec("6000"),
	})
	s.Require().NoError(err)
	s.True(d.Balance.IsZero())
	s.True(c.Balance.IsZero())
	s.Contains(d.Observation, credit.SaleID)
	s.Contains(c.Observation, debt.SaleID)
	s.True(s.stored(debt.SaleID).Balance.IsZero())
	s.True(s.stored(credit.SaleID).Balance.IsZero())
	s.Equal(int64(2), s.stored(debt.SaleID).Version)
	s.Equal(int64(4), s.stored(credit.SaleID).Version)
}

func (s *SaleServiceTestSuite) TestCompensate_Rejections() {
	debt := s.seed("MOUSSA", "10", "100", "0")        // +1000
	credit := s.seed("MOUSSA", "10", "100", "1500")   // -500
	otherClient := s.seed("AWA", "10", "100", "2000") // -1000

	_, _, err := s.service.Compensate(s.ctx, testCompanyID, dto.CompensateRequest{DebtID: debt.SaleID, CreditID: credit.SaleID, AmountToUse: dec("501")})
	s.ErrorIs(err, apperrors.ErrConflict)

	_, _, err = s.service.Compensate(s.ctx, testCompanyID, dto.CompensateRequest{DebtID: debt.SaleID, CreditID: otherClient.SaleID, AmountToUse: dec("10")})
	s.ErrorIs(err, apperrors.ErrConflict)

	_, _, err = s.service.Compensate(s.ctx, testCompanyID, dto.CompensateRequest{DebtID: debt.SaleID, CreditID: debt.SaleID, AmountToUse: dec("10")})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, _, err = s.service.Compensate(s.ctx, otherCompanyID, dto.CompensateRequest{DebtID: debt.SaleID, CreditID: credit.SaleID, AmountToUse: dec("10")})
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.True(s.stored(debt.SaleID).Balance.Equal(dec("1000")))
	s.True(s.stored(credit.SaleID).Balance.Equal(dec("-500")))
	s.Equal(int64(1), s.stored(debt.SaleID).Version)
}

func (s *SaleServiceTestSuite) TestCompensate_SecondWriteFailsRollsBackBoth() {
	debt := s.seed("MOUSSA", "10", "100", "0")
	credit := s.seed("MOUSSA", "10", "100", "1500")

	s.store.beforeUpdate = func(stored map[string]domain.Sale, sale domain.Sale) {
		if sale.SaleID == credit.SaleID {
			bumped := stored[credit.SaleID]
			bumped.Version++
			stored[credit.SaleID] = bumped
		}
	}

	_, _, err := s.service.Compensate(s.ctx, testCompanyID, dto.CompensateRequest{DebtID: debt.SaleID, CreditID: credit.SaleID, AmountToUse: dec("500")})
	s.ErrorIs(err, apperrors.ErrConflict)
	s.True(s.stored(debt.SaleID).Balance.Equal(dec("1000")), "debt write must be rolled back")
	s.Equal(int64(1), s.stored(credit.SaleID).Version)
}

func (s *SaleServiceTestSuite) TestEditSale() {
	sale := s.seed("AWA", "100", "500", "10000")

	edited, err := s.service.EditSale(s.ctx, testCompanyID, sale.SaleID, dto.EditSaleRequest{
		SaleData: saleRequest("AWA", "80", "600", "10000"),
		Motif:    "  wrong weight  ",
	})
	s.Require().NoError(err)
	s.True(edited.Amount.Equal(dec("48000")))
	s.True(edited.Balance.Equal(dec("38000")))
	s.Equal(int64(2), edited.Version)

	logs := s.store.actionLogs()
	s.Require().Len(logs, 1)
	s.Equal(domain.ActionEdit, logs[0].ActionType)
	s.Equal("wrong weight", logs[0].Motif)
	s.Equal("Pisciculture du Fleuve", logs[0].CompanyName)

	var snapshot domain.Sale
	s.Require().NoError(json.Unmarshal(logs[0].SaleData, &snapshot))
	s.True(snapshot.Amount.Equal(dec("50000")), "snapshot holds the pre-edit state")
}

func (s *SaleServiceTestSuite) TestEditSale_Rejections() {
	sale := s.seed("AWA", "100", "500", "0")
	stale := int64(7)

	tests := []struct {
		name string
		req  dto.EditSaleRequest
		want error
	}{
		{"empty motif", dto.EditSaleRequest{SaleData: saleRequest("AWA", "1", "1", "0"), Motif: "   "}, apperrors.ErrValidation},
		{"invalid data", dto.EditSaleRequest{SaleData: saleRequest("AWA", "0", "1", "0"), Motif: "fix"}, apperrors.ErrValidation},
		{"stale version", dto.EditSaleRequest{SaleData: saleRequest("AWA", "1", "1", "0"), Motif: "fix", Version: &stale}, apperrors.ErrConflict},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.EditSale(s.ctx, testCompanyID, sale.SaleID, tt.req)
			s.ErrorIs(err, tt.want)
		})
	}

	s.Empty(s.store.actionLogs())
	s.True(s.stored(sale.SaleID).Amount.Equal(dec("50000")))
	s.Equal(int64(1), s.stored(sale.SaleID).Version)
}

func (s *SaleServiceTestSuite) TestDeleteSale() {
	sale := s.seed("AWA", "100", "500", "0")

	s.ErrorIs(s.service.DeleteSale(s.ctx, testCompanyID, sale.SaleID, ""), apperrors.ErrValidation)
	s.stored(sale.SaleID)
	s.Empty(s.store.actionLogs())

	s.Require().NoError(s.service.DeleteSale(s.ctx, testCompanyID, sale.SaleID, "entered twice"))
	_, ok := s.store.get(sale.SaleID)
	s.False(ok)

	logs := s.store.actionLogs()
	s.Require().Len(logs, 1)
	s.Equal(domain.ActionDelete, logs[0].ActionType)
	s.Equal(sale.SaleID, logs[0].SaleID)
	s.Equal("entered twice", logs[0].Motif)

	s.ErrorIs(s.service.DeleteSale(s.ctx, testCompanyID, sale.SaleID, "again"), apperrors.ErrNotFound)
}

func (s *SaleServiceTestSuite) TestLostRaceIsConflictWithoutRetry() {
	sale := s.seed("AWA", "100", "500", "0")
	s.store.beforeUpdate = func(stored map[string]domain.Sale, in domain.Sale) {
		bumped := stored[in.SaleID]
		bumped.Version++
		stored[in.SaleID] = bumped
	}

	_, err := s.service.Pay(s.ctx, testCompanyID, sale.SaleID, dto.AmountRequest{Amount: dec("100")})
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Equal(1, s.store.updateCalls)
	s.True(s.stored(sale.SaleID).Payment.IsZero())
	s.Require().Len(s.observer.outcome["pay"], 1)
	s.Error(s.observer.outcome["pay"][0])
}

func (s *SaleServiceTestSuite) TestConcurrentPaymentsAreAllApplied() {
	sale := s.seed("AWA", "100", "500", "0")
	const workers = 25

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.Pay(s.ctx, testCompanyID, sale.SaleID, dto.AmountRequest{Amount: dec("2000")})
			s.NoError(err)
		}()
	}
	wg.Wait()

	stored := s.stored(sale.SaleID)
	s.True(stored.Payment.Equal(dec("50000")))
	s.True(stored.Balance.IsZero())
	s.True(stored.Settled)
	s.Equal(int64(workers+1), stored.Version)
}

func (s *SaleServiceTestSuite) TestClientBalancesAndCredits() {
	debt := s.seed("Moussa", "10", "100", "0")
	credit := s.seed("MOUSSA", "10", "100", "1500")
	s.seed("MOUSSA", "10", "100", "1000")

	debts, err := s.service.ListClientBalances(s.ctx, testCompanyID, "moussa")
	s.Require().NoError(err)
	s.Require().Len(debts, 1)
	s.Equal(debt.SaleID, debts[0].SaleID)

	credits, err := s.service.ListClientCredits(s.ctx, testCompanyID, "MOUSSA")
	s.Require().NoError(err)
	s.Require().Len(credits, 1)
	s.Equal(credit.SaleID, credits[0].SaleID)

	_, err = s.service.ListClientBalances(s.ctx, testCompanyID, "???")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *SaleServiceTestSuite) TestListSales() {
	s.seed("AWA", "1", "100", "0")
	s.seed("MOUSSA", "1", "100", "0")

	resp, err := s.service.ListSales(s.ctx, testCompanyID, dto.ListSalesParams{Client: "awa"})
	s.Require().NoError(err)
	s.Require().Len(resp.Sales, 1)
	s.Equal("AWA", resp.Sales[0].ClientName)
	s.Equal("2024-03-14", resp.Sales[0].Date)

	_, err = s.service.ListSales(s.ctx, testCompanyID, dto.ListSalesParams{StartDate: "2024-03-10", EndDate: "2024-03-01"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestCompanyMissingFailsEditBeforeTouchingSale(t *testing.T) {
	store := newMemSaleStore(domain.Sale{SaleID: uuid.NewString(), CompanyID: testCompanyID, Version: 1})
	companyRepo := new(MockCompanyRepository)
	companyRepo.On("FindCompanyByID", mock.Anything, testCompanyID).Return(nil, apperrors.ErrNotFound)
	svc := services.NewSaleService(store, companyRepo)

	var id string
	for k := range store.sales {
		id = k
	}
	_, err := svc.EditSale(context.Background(), testCompanyID, id, dto.EditSaleRequest{
		SaleData: saleRequest("AWA", "1", "1", "0"),
		Motif:    "fix",
	})
	if err == nil {
		t.Fatal("expected an error when the company cannot be loaded")
	}
	if len(store.actionLogs()) != 0 {
		t.Fatal("no audit entry expected")
	}
	companyRepo.AssertExpectations(t)
}
