package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fish_sales_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fish_sales_app/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	saleReader    portsrepo.SaleReader
}

// NewReportingService creates a new reporting service
func NewReportingService(reportingRepo portsrepo.ReportingRepository, saleReader portsrepo.SaleReader) portssvc.ReportingService {
	return &reportingService{
		BaseService:   newBaseService(),
		reportingRepo: reportingRepo,
		saleReader:    saleReader,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// GetSummary computes the totals and the per-fish-type breakdown concurrently.
func (s *reportingService) GetSummary(ctx context.Context, companyID string, filter domain.SaleFilter) (*domain.Summary, error) {
	summary := &domain.Summary{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		totals, err := s.reportingRepo.GetLedgerTotals(gctx, companyID, filter)
		if err != nil {
			return fmt.Errorf("failed to retrieve ledger totals: %w", err)
		}
		summary.LedgerTotals = totals
		return nil
	})
	g.Go(func() error {
		rows, err := s.reportingRepo.GetFishTypeTotals(gctx, companyID, filter)
		if err != nil {
			return fmt.Errorf("failed to retrieve fish type totals: %w", err)
		}
		summary.ByFishType = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build summary")
		return nil, err
	}

	s.LogInfo(ctx, "Summary generated",
		slog.Int64("sale_count", summary.SaleCount),
		slog.String("total_debt", summary.TotalDebt.String()),
		slog.String("total_credit", summary.TotalCredit.String()))
	return summary, nil
}

// GetBoard ranks clients by the sum of their debts or credits.
func (s *reportingService) GetBoard(ctx context.Context, companyID string, kind domain.BalanceKind) ([]domain.ClientBalance, error) {
	if kind != domain.BalanceDebt && kind != domain.BalanceCredit {
		return nil, fmt.Errorf("%w: unknown board %q", apperrors.ErrValidation, kind)
	}
	rows, err := s.reportingRepo.GetClientBoard(ctx, companyID, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to build client board", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to retrieve %s board: %w", kind, err)
	}
	return rows, nil
}

// GetClientAnalysis fetches the client's totals, open debts and credits concurrently.
func (s *reportingService) GetClientAnalysis(ctx context.Context, companyID, rawClientName string) (*domain.ClientAnalysis, error) {
	clientName, err := domain.ParseClientName(rawClientName)
	if err != nil {
		return nil, err
	}

	analysis := &domain.ClientAnalysis{ClientName: clientName}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		totals, err := s.reportingRepo.GetLedgerTotals(gctx, companyID, domain.SaleFilter{ClientName: clientName})
		if err != nil {
			return fmt.Errorf("failed to retrieve client totals: %w", err)
		}
		analysis.Totals = totals
		return nil
	})
	g.Go(func() error {
		debts, err := s.saleReader.ListClientSalesByBalance(gctx, companyID, clientName, domain.BalanceDebt)
		if err != nil {
			return fmt.Errorf("failed to retrieve client debts: %w", err)
		}
		analysis.OpenDebts = debts
		return nil
	})
	g.Go(func() error {
		credits, err := s.saleReader.ListClientSalesByBalance(gctx, companyID, clientName, domain.BalanceCredit)
		if err != nil {
			return fmt.Errorf("failed to retrieve client credits: %w", err)
		}
		analysis.Credits = credits
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build client analysis", slog.String("client_name", clientName))
		return nil, err
	}
	return analysis, nil
}
