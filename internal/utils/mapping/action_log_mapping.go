package mapping

import (
	"encoding/json"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	"github.com/SscSPs/fish_sales_app/internal/models"
)

// ToModelActionLog converts a domain ActionLog to a model ActionLog
func ToModelActionLog(d domain.ActionLog) models.ActionLog {
	return models.ActionLog{
		ActionLogID: d.ActionLogID,
		ActionType:  string(d.ActionType),
		SaleID:      d.SaleID,
		SaleData:    []byte(d.SaleData),
		Motif:       d.Motif,
		CompanyID:   d.CompanyID,
		CompanyName: d.CompanyName,
		PerformedBy: d.PerformedBy,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainActionLog converts a model ActionLog to a domain ActionLog
func ToDomainActionLog(m models.ActionLog) domain.ActionLog {
	return domain.ActionLog{
		ActionLogID: m.ActionLogID,
		ActionType:  domain.ActionType(m.ActionType),
		SaleID:      m.SaleID,
		SaleData:    json.RawMessage(m.SaleData),
		Motif:       m.Motif,
		CompanyID:   m.CompanyID,
		CompanyName: m.CompanyName,
		PerformedBy: m.PerformedBy,
		CreatedAt:   m.CreatedAt,
	}
}
