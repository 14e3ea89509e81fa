package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fish_sales_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fish_sales_app/internal/core/ports/services"
	"github.com/SscSPs/fish_sales_app/internal/dto"
	"github.com/SscSPs/fish_sales_app/internal/utils/pagination"
)

// saleService runs the ledger operations. Every mutation locks its rows,
// applies the domain transition and writes back under a version check.
type saleService struct {
	BaseService
	saleRepo    portsrepo.SaleRepositoryWithTx
	companyRepo portsrepo.CompanyRepositoryFacade
}

// SaleServiceOption is a functional option for configuring the sale service
type SaleServiceOption func(*saleService)

// WithSaleObserver reports every mutation outcome to o.
func WithSaleObserver(o OperationObserver) SaleServiceOption {
	return func(s *saleService) {
		s.Observer = o
	}
}

// WithSaleClock overrides the time source, mainly for tests.
func WithSaleClock(now func() time.Time) SaleServiceOption {
	return func(s *saleService) {
		s.Now = now
	}
}

// NewSaleService creates a new sale service with the provided options
func NewSaleService(saleRepo portsrepo.SaleRepositoryWithTx, companyRepo portsrepo.CompanyRepositoryFacade, options ...SaleServiceOption) portssvc.SaleSvcFacade {
	svc := &saleService{
		BaseService: newBaseService(),
		saleRepo:    saleRepo,
		companyRepo: companyRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure saleService implements the SaleSvcFacade interface
var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func saleNotFound(saleID string) error {
	return fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
}

// CreateSale validates the request and stores a new sale at version 1.
func (s *saleService) CreateSale(ctx context.Context, companyID string, req dto.SaleRequest) (*domain.Sale, error) {
	input, err := req.ToSaleInput()
	if err != nil {
		return nil, err
	}
	sale, err := domain.NewSale(input)
	if err != nil {
		s.LogWarn(ctx, "Sale rejected", slog.String("error", err.Error()))
		return nil, err
	}

	now := s.Now()
	sale.SaleID = s.NewID()
	sale.CompanyID = companyID
	sale.Version = 1
	sale.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     companyID,
		LastUpdatedAt: now,
		LastUpdatedBy: companyID,
	}

	err = s.saleRepo.SaveSale(ctx, sale)
	s.observe("create", err)
	if err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("client_name", sale.ClientName))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	s.LogInfo(ctx, "Sale created",
		slog.String("sale_id", sale.SaleID),
		slog.String("client_name", sale.ClientName),
		slog.String("amount", sale.Amount.String()),
		slog.String("balance", sale.Balance.String()))
	return &sale, nil
}

// GetSale returns a single sale of the company.
func (s *saleService) GetSale(ctx context.Context, companyID, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, companyID, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get sale", slog.String("sale_id", saleID))
		}
		return nil, err
	}
	return sale, nil
}

// ListSales returns one page of sales matching the filters.
func (s *saleService) ListSales(ctx context.Context, companyID string, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	filter, err := params.ToFilter()
	if err != nil {
		return nil, err
	}
	limit := pagination.NormalizeLimit(params.Limit)

	sales, nextToken, err := s.saleRepo.ListSales(ctx, companyID, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, fmt.Errorf("failed to retrieve sales: %w", err)
	}
	return &dto.ListSalesResponse{
		Sales:     dto.ToSaleResponses(sales),
		NextToken: nextToken,
	}, nil
}

func (s *saleService) ListClientBalances(ctx context.Context, companyID, clientName string) ([]domain.Sale, error) {
	return s.listClientSales(ctx, companyID, clientName, domain.BalanceDebt)
}

func (s *saleService) ListClientCredits(ctx context.Context, companyID, clientName string) ([]domain.Sale, error) {
	return s.listClientSales(ctx, companyID, clientName, domain.BalanceCredit)
}

func (s *saleService) listClientSales(ctx context.Context, companyID, rawClientName string, kind domain.BalanceKind) ([]domain.Sale, error) {
	clientName, err := domain.ParseClientName(rawClientName)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.ListClientSalesByBalance(ctx, companyID, clientName, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list client sales", slog.String("client_name", clientName), slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to retrieve client sales: %w", err)
	}
	return sales, nil
}

// Deliver records a delivery. Over-delivery is rejected without touching the sale.
func (s *saleService) Deliver(ctx context.Context, companyID, saleID string, req dto.DeliverRequest) (*domain.Sale, error) {
	return s.mutateSale(ctx, "deliver", companyID, saleID, func(sale *domain.Sale) error {
		if err := sale.Deliver(req.Qty); err != nil {
			return err
		}
		sale.AppendObservation(req.Note)
		return nil
	})
}

// Pay adds a payment. Overpaying turns the balance into a credit.
func (s *saleService) Pay(ctx context.Context, companyID, saleID string, req dto.AmountRequest) (*domain.Sale, error) {
	return s.mutateSale(ctx, "pay", companyID, saleID, func(sale *domain.Sale) error {
		if err := sale.Pay(req.Amount); err != nil {
			return err
		}
		sale.AppendObservation(req.Note)
		return nil
	})
}

// Settle pays off the remaining debt of a sale.
func (s *saleService) Settle(ctx context.Context, companyID, saleID string) (*domain.Sale, error) {
	return s.mutateSale(ctx, "settle", companyID, saleID, func(sale *domain.Sale) error {
		_, err := sale.Settle()
		return err
	})
}

// Refund gives part of a credit back to the client.
func (s *saleService) Refund(ctx context.Context, companyID, saleID string, req dto.AmountRequest) (*domain.Sale, error) {
	return s.mutateSale(ctx, "refund", companyID, saleID, func(sale *domain.Sale) error {
		if err := sale.Refund(req.Amount); err != nil {
			return err
		}
		sale.AppendObservation(req.Note)
		return nil
	})
}

// mutateSale locks one sale, applies fn and writes it back in a single transaction.
func (s *saleService) mutateSale(ctx context.Context, operation, companyID, saleID string, fn func(sale *domain.Sale) error) (*domain.Sale, error) {
	var updated domain.Sale
	err := s.saleRepo.WithinTx(ctx, func(tx portsrepo.SaleTxStore) error {
		sales, err := tx.FindSalesForUpdate(ctx, companyID, []string{saleID})
		if err != nil {
			return err
		}
		sale, ok := sales[saleID]
		if !ok {
			return saleNotFound(saleID)
		}

		if err := fn(&sale); err != nil {
			return err
		}
		sale.Touch(companyID, s.Now())

		if err := tx.UpdateSale(ctx, sale); err != nil {
			return err
		}
		sale.Version++
		updated = sale
		return nil
	})
	s.observe(operation, err)
	if err != nil {
		s.logMutationFailure(ctx, err, operation, slog.String("sale_id", saleID))
		return nil, err
	}

	s.LogInfo(ctx, "Sale updated",
		slog.String("operation", operation),
		slog.String("sale_id", saleID),
		slog.String("payment", updated.Payment.String()),
		slog.String("balance", updated.Balance.String()),
		slog.Int64("version", updated.Version))
	return &updated, nil
}

// Compensate applies part of a credit sale onto a debt sale of the same client.
// Both rows are locked and written in one transaction.
func (s *saleService) Compensate(ctx context.Context, companyID string, req dto.CompensateRequest) (*domain.Sale, *domain.Sale, error) {
	if req.DebtID == req.CreditID {
		return nil, nil, domain.ErrCompensationSameSale
	}

	var debt, credit domain.Sale
	err := s.saleRepo.WithinTx(ctx, func(tx portsrepo.SaleTxStore) error {
		sales, err := tx.FindSalesForUpdate(ctx, companyID, []string{req.DebtID, req.CreditID})
		if err != nil {
			return err
		}
		var ok bool
		if debt, ok = sales[req.DebtID]; !ok {
			return saleNotFound(req.DebtID)
		}
		if credit, ok = sales[req.CreditID]; !ok {
			return saleNotFound(req.CreditID)
		}

		if err := domain.Compensate(&debt, &credit, req.AmountToUse); err != nil {
			return err
		}
		debt.AppendObservation(fmt.Sprintf("compensated %s from credit of sale %s", req.AmountToUse, credit.SaleID))
		credit.AppendObservation(fmt.Sprintf("%s of credit used to pay sale %s", req.AmountToUse, debt.SaleID))

		now := s.Now()
		debt.Touch(companyID, now)
		credit.Touch(companyID, now)
		if err := tx.UpdateSale(ctx, debt); err != nil {
			return err
		}
		if err := tx.UpdateSale(ctx, credit); err != nil {
			return err
		}
		debt.Version++
		credit.Version++
		return nil
	})
	s.observe("compensate", err)
	if err != nil {
		s.logMutationFailure(ctx, err, "compensate",
			slog.String("debt_id", req.DebtID),
			slog.String("credit_id", req.CreditID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Manual compensation applied",
		slog.String("debt_id", debt.SaleID),
		slog.String("credit_id", credit.SaleID),
		slog.String("amount", req.AmountToUse.String()),
		slog.String("debt_balance", debt.Balance.String()),
		slog.String("credit_balance", credit.Balance.String()))
	return &debt, &credit, nil
}

// EditSale replaces a sale's fields and records the previous state in the audit log.
func (s *saleService) EditSale(ctx context.Context, companyID, saleID string, req dto.EditSaleRequest) (*domain.Sale, error) {
	motif, err := domain.ValidateMotif(req.Motif)
	if err != nil {
		return nil, err
	}
	input, err := req.SaleData.ToSaleInput()
	if err != nil {
		return nil, err
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	var updated domain.Sale
	err = s.saleRepo.WithinTx(ctx, func(tx portsrepo.SaleTxStore) error {
		sales, err := tx.FindSalesForUpdate(ctx, companyID, []string{saleID})
		if err != nil {
			return err
		}
		sale, ok := sales[saleID]
		if !ok {
			return saleNotFound(saleID)
		}
		if err := sale.CheckVersion(req.Version); err != nil {
			return err
		}

		now := s.Now()
		entry, err := domain.NewActionLog(s.NewID(), domain.ActionEdit, sale, motif, *company, companyID, now)
		if err != nil {
			return err
		}
		if err := sale.Replace(input); err != nil {
			return err
		}
		sale.Touch(companyID, now)

		if err := tx.SaveActionLog(ctx, entry); err != nil {
			return err
		}
		if err := tx.UpdateSale(ctx, sale); err != nil {
			return err
		}
		sale.Version++
		updated = sale
		return nil
	})
	s.observe("edit", err)
	if err != nil {
		s.logMutationFailure(ctx, err, "edit", slog.String("sale_id", saleID))
		return nil, err
	}

	s.LogInfo(ctx, "Sale edited", slog.String("sale_id", saleID), slog.String("motif", motif), slog.Int64("version", updated.Version))
	return &updated, nil
}

// DeleteSale removes a sale after recording it in the audit log.
func (s *saleService) DeleteSale(ctx context.Context, companyID, saleID, rawMotif string) error {
	motif, err := domain.ValidateMotif(rawMotif)
	if err != nil {
		return err
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return fmt.Errorf("failed to load company: %w", err)
	}

	err = s.saleRepo.WithinTx(ctx, func(tx portsrepo.SaleTxStore) error {
		sales, err := tx.FindSalesForUpdate(ctx, companyID, []string{saleID})
		if err != nil {
			return err
		}
		sale, ok := sales[saleID]
		if !ok {
			return saleNotFound(saleID)
		}

		entry, err := domain.NewActionLog(s.NewID(), domain.ActionDelete, sale, motif, *company, companyID, s.Now())
		if err != nil {
			return err
		}
		if err := tx.SaveActionLog(ctx, entry); err != nil {
			return err
		}
		return tx.DeleteSale(ctx, companyID, saleID, sale.Version)
	})
	s.observe("delete", err)
	if err != nil {
		s.logMutationFailure(ctx, err, "delete", slog.String("sale_id", saleID))
		return err
	}

	s.LogInfo(ctx, "Sale deleted", slog.String("sale_id", saleID), slog.String("motif", motif))
	return nil
}

// logMutationFailure keeps rejected requests at warn level and real failures at error.
func (s *saleService) logMutationFailure(ctx context.Context, err error, operation string, attrs ...any) {
	attrs = append(attrs, slog.String("operation", operation))
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrConflict):
		s.LogWarn(ctx, "Ledger operation rejected", append(attrs, slog.String("error", err.Error()))...)
	default:
		s.LogError(ctx, err, "Ledger operation failed", attrs...)
	}
}
