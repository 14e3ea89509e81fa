package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
)

// ListActionLogsParams holds the query parameters of the audit listing.
type ListActionLogsParams struct {
	SaleID     string            `form:"saleID" binding:"omitempty,uuid"`
	ActionType domain.ActionType `form:"actionType" binding:"omitempty,oneof=edit delete"`
	Limit      int               `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken  *string           `form:"nextToken"`
}

// ActionLogResponse defines the data returned for an audit entry.
type ActionLogResponse struct {
	ActionLogID string            `json:"actionLogID"`
	ActionType  domain.ActionType `json:"actionType"`
	SaleID      string            `json:"saleID"`
	SaleData    json.RawMessage   `json:"saleData" swaggertype:"object"`
	Motif       string            `json:"motif"`
	CompanyName string            `json:"companyName"`
	PerformedBy string            `json:"performedBy"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// ListActionLogsResponse is one page of audit entries.
type ListActionLogsResponse struct {
	ActionLogs []ActionLogResponse `json:"actionLogs"`
	NextToken  *string             `json:"nextToken,omitempty"`
}

func ToActionLogResponse(l domain.ActionLog) ActionLogResponse {
	return ActionLogResponse{
		ActionLogID: l.ActionLogID,
		ActionType:  l.ActionType,
		SaleID:      l.SaleID,
		SaleData:    l.SaleData,
		Motif:       l.Motif,
		CompanyName: l.CompanyName,
		PerformedBy: l.PerformedBy,
		CreatedAt:   l.CreatedAt,
	}
}
