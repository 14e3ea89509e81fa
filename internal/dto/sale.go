package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// SaleRequest carries the operator-editable fields of a sale.
// Used both to create a sale and as the replacement data of an edit.
type SaleRequest struct {
	ClientName  string          `json:"clientName" binding:"required,clientname" example:"Ndeye Fall"`
	FishType    domain.FishType `json:"fishType" binding:"required,fishtype" example:"tilapia"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02" example:"2024-03-14"`
	Quantity    decimal.Decimal `json:"quantity" binding:"dpos" swaggertype:"string" example:"100"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"dpos" swaggertype:"string" example:"500"`
	Delivered   decimal.Decimal `json:"delivered" binding:"dnonneg" swaggertype:"string" example:"0"`
	Payment     decimal.Decimal `json:"payment" binding:"dnonneg" swaggertype:"string" example:"0"`
	Observation string          `json:"observation" binding:"max=1000"`
}

// ToSaleInput parses the date and hands the fields to the domain.
func (r SaleRequest) ToSaleInput() (domain.SaleInput, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.SaleInput{}, err
	}
	return domain.SaleInput{
		ClientName:  r.ClientName,
		FishType:    r.FishType,
		Date:        date,
		Quantity:    r.Quantity,
		Delivered:   r.Delivered,
		UnitPrice:   r.UnitPrice,
		Payment:     r.Payment,
		Observation: r.Observation,
	}, nil
}

// EditSaleRequest replaces a sale's fields. Version is optional; when sent it must match the stored one.
type EditSaleRequest struct {
	SaleData SaleRequest `json:"saleData"`
	Motif    string      `json:"motif" binding:"required,max=500"`
	Version  *int64      `json:"version,omitempty"`
}

// DeleteSaleRequest carries the mandatory motif of a deletion.
type DeleteSaleRequest struct {
	Motif string `json:"motif" form:"motif"`
}

// DeliverRequest records kilograms handed to the client.
type DeliverRequest struct {
	Qty  decimal.Decimal `json:"qty" binding:"dpos" swaggertype:"string" example:"10"`
	Note string          `json:"note" binding:"max=500"`
}

// AmountRequest is the body of pay and refund.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"dpos" swaggertype:"string" example:"5000"`
	Note   string          `json:"note" binding:"max=500"`
}

// CompensateRequest moves part of a credit onto a debt of the same client.
type CompensateRequest struct {
	DebtID      string          `json:"debtId" binding:"required,uuid"`
	CreditID    string          `json:"creditId" binding:"required,uuid,nefield=DebtID"`
	AmountToUse decimal.Decimal `json:"amountToUse" binding:"dpos" swaggertype:"string" example:"6000"`
}

// ListSalesParams holds the query parameters of the sales listing.
type ListSalesParams struct {
	FishType  domain.FishType `form:"fishType" binding:"omitempty,fishtype"`
	Client    string          `form:"client"`
	StartDate string          `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string          `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Limit     int             `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string         `form:"nextToken"`
}

// ToFilter converts the query parameters into a domain filter.
func (p ListSalesParams) ToFilter() (domain.SaleFilter, error) {
	return BuildSaleFilter(p.FishType, p.Client, p.StartDate, p.EndDate)
}

// BuildSaleFilter normalizes the client name and parses the optional date range.
func BuildSaleFilter(fishType domain.FishType, client, startDate, endDate string) (domain.SaleFilter, error) {
	filter := domain.SaleFilter{FishType: fishType}
	if client != "" {
		filter.ClientName = domain.NormalizeClientName(client)
	}
	if startDate != "" {
		start, err := ParseDate(startDate)
		if err != nil {
			return domain.SaleFilter{}, err
		}
		filter.StartDate = &start
	}
	if endDate != "" {
		end, err := ParseDate(endDate)
		if err != nil {
			return domain.SaleFilter{}, err
		}
		filter.EndDate = &end
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return domain.SaleFilter{}, fmt.Errorf("%w: endDate must not be before startDate", apperrors.ErrValidation)
	}
	return filter, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, raw)
	}
	return t, nil
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID        string          `json:"saleID"`
	ClientName    string          `json:"clientName"`
	FishType      domain.FishType `json:"fishType"`
	Date          string          `json:"date"`
	Quantity      decimal.Decimal `json:"quantity" swaggertype:"string"`
	Delivered     decimal.Decimal `json:"delivered" swaggertype:"string"`
	UnitPrice     decimal.Decimal `json:"unitPrice" swaggertype:"string"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string"`
	Payment       decimal.Decimal `json:"payment" swaggertype:"string"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string"`
	Settled       bool            `json:"settled"`
	Observation   string          `json:"observation"`
	Version       int64           `json:"version"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListSalesResponse is one page of sales.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// CompensationResponse returns both sides of a manual compensation.
type CompensationResponse struct {
	Debt   SaleResponse `json:"debt"`
	Credit SaleResponse `json:"credit"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:        s.SaleID,
		ClientName:    s.ClientName,
		FishType:      s.FishType,
		Date:          s.Date.Format(DateLayout),
		Quantity:      s.Quantity,
		Delivered:     s.Delivered,
		UnitPrice:     s.UnitPrice,
		Amount:        s.Amount,
		Payment:       s.Payment,
		Balance:       s.Balance,
		Settled:       s.Settled,
		Observation:   s.Observation,
		Version:       s.Version,
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
}

// ToSaleResponses converts a slice of domain.Sale to []SaleResponse.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return responses
}
