package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleFilter narrows listing and aggregation queries. Zero values mean "no filter".
type SaleFilter struct {
	FishType   FishType
	ClientName string
	StartDate  *time.Time
	EndDate    *time.Time
}

// LedgerTotals aggregates the monetary and weight columns of a set of sales.
type LedgerTotals struct {
	SaleCount      int64           `json:"saleCount"`
	TotalQuantity  decimal.Decimal `json:"totalQuantity"`
	TotalDelivered decimal.Decimal `json:"totalDelivered"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	TotalPayment   decimal.Decimal `json:"totalPayment"`
	TotalBalance   decimal.Decimal `json:"totalBalance"`
	TotalDebt      decimal.Decimal `json:"totalDebt"`   // sum of positive balances
	TotalCredit    decimal.Decimal `json:"totalCredit"` // sum of |negative balances|
}

// FishTypeTotals is one row of the per-species breakdown.
type FishTypeTotals struct {
	FishType FishType `json:"fishType"`
	LedgerTotals
}

// Summary is the dashboard overview.
type Summary struct {
	LedgerTotals
	ByFishType []FishTypeTotals `json:"byFishType"`
}

// ClientBalance is one row of the debts or credits board.
type ClientBalance struct {
	ClientName string          `json:"clientName"`
	Total      decimal.Decimal `json:"total"`
	SaleCount  int64           `json:"saleCount"`
}

// ClientAnalysis gathers everything known about a single client.
type ClientAnalysis struct {
	ClientName string       `json:"clientName"`
	Totals     LedgerTotals `json:"totals"`
	OpenDebts  []Sale       `json:"openDebts"`
	Credits    []Sale       `json:"credits"`
}

// BalanceKind selects the side of the ledger a client query looks at.
type BalanceKind string

const (
	BalanceDebt   BalanceKind = "debt"   // balance > 0
	BalanceCredit BalanceKind = "credit" // balance < 0
)
