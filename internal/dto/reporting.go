package dto

import (
	"github.com/SscSPs/fish_sales_app/internal/core/domain"
)

// SummaryParams holds the optional filters of the summary endpoint.
type SummaryParams struct {
	FishType  domain.FishType `form:"fishType" binding:"omitempty,fishtype"`
	Client    string          `form:"client"`
	StartDate string          `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string          `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

func (p SummaryParams) ToFilter() (domain.SaleFilter, error) {
	return BuildSaleFilter(p.FishType, p.Client, p.StartDate, p.EndDate)
}

// BoardResponse lists clients ranked by open debt or held credit.
type BoardResponse struct {
	Kind    domain.BalanceKind     `json:"kind"`
	Clients []domain.ClientBalance `json:"clients"`
}

// ClientAnalysisResponse is the per-client view of the ledger.
type ClientAnalysisResponse struct {
	ClientName string              `json:"clientName"`
	Totals     domain.LedgerTotals `json:"totals"`
	OpenDebts  []SaleResponse      `json:"openDebts"`
	Credits    []SaleResponse      `json:"credits"`
}

// ToClientAnalysisResponse converts the domain analysis to its DTO.
func ToClientAnalysisResponse(a *domain.ClientAnalysis) ClientAnalysisResponse {
	return ClientAnalysisResponse{
		ClientName: a.ClientName,
		Totals:     a.Totals,
		OpenDebts:  ToSaleResponses(a.OpenDebts),
		Credits:    ToSaleResponses(a.Credits),
	}
}
