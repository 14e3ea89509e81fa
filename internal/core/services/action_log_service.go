package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fish_sales_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fish_sales_app/internal/core/ports/services"
	"github.com/SscSPs/fish_sales_app/internal/dto"
	"github.com/SscSPs/fish_sales_app/internal/utils/pagination"
)

type actionLogService struct {
	BaseService
	actionLogRepo portsrepo.ActionLogReader
}

// NewActionLogService creates the read side of the audit trail.
func NewActionLogService(repo portsrepo.ActionLogReader) portssvc.ActionLogSvc {
	return &actionLogService{
		BaseService:   newBaseService(),
		actionLogRepo: repo,
	}
}

var _ portssvc.ActionLogSvc = (*actionLogService)(nil)

// ListActionLogs returns the company's audit entries, newest first.
func (s *actionLogService) ListActionLogs(ctx context.Context, companyID string, params dto.ListActionLogsParams) (*dto.ListActionLogsResponse, error) {
	filter := domain.ActionLogFilter{SaleID: params.SaleID, ActionType: params.ActionType}
	logs, nextToken, err := s.actionLogRepo.ListActionLogs(ctx, companyID, filter, pagination.NormalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list action logs")
		return nil, fmt.Errorf("failed to retrieve action logs: %w", err)
	}

	responses := make([]dto.ActionLogResponse, len(logs))
	for i, l := range logs {
		responses[i] = dto.ToActionLogResponse(l)
	}
	return &dto.ListActionLogsResponse{ActionLogs: responses, NextToken: nextToken}, nil
}
