package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
)

// ActionType is the kind of audited mutation.
type ActionType string

const (
	ActionEdit   ActionType = "edit"
	ActionDelete ActionType = "delete"
)

func (a ActionType) IsValid() bool {
	return a == ActionEdit || a == ActionDelete
}

var ErrMissingMotif = fmt.Errorf("%w: a non-empty motif is required", apperrors.ErrValidation)

// ActionLog is an append-only audit entry holding the sale as it was before an edit or delete.
type ActionLog struct {
	ActionLogID string          `json:"actionLogID"`
	ActionType  ActionType      `json:"actionType"`
	SaleID      string          `json:"saleID"`
	SaleData    json.RawMessage `json:"saleData"`
	Motif       string          `json:"motif"`
	CompanyID   string          `json:"companyID"`
	CompanyName string          `json:"companyName"`
	PerformedBy string          `json:"performedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ValidateMotif trims motif and rejects it when empty.
func ValidateMotif(motif string) (string, error) {
	trimmed := strings.TrimSpace(motif)
	if trimmed == "" {
		return "", ErrMissingMotif
	}
	return trimmed, nil
}

// NewActionLog snapshots before into an audit entry.
func NewActionLog(id string, actionType ActionType, before Sale, motif string, company Company, performedBy string, at time.Time) (ActionLog, error) {
	snapshot, err := json.Marshal(before)
	if err != nil {
		return ActionLog{}, fmt.Errorf("failed to snapshot sale %s: %w", before.SaleID, err)
	}
	return ActionLog{
		ActionLogID: id,
		ActionType:  actionType,
		SaleID:      before.SaleID,
		SaleData:    snapshot,
		Motif:       motif,
		CompanyID:   company.CompanyID,
		CompanyName: company.Name,
		PerformedBy: performedBy,
		CreatedAt:   at,
	}, nil
}

// ActionLogFilter narrows the audit listing.
type ActionLogFilter struct {
	SaleID     string
	ActionType ActionType
}
