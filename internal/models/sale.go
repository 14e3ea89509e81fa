package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the row stored in the sales table.
type Sale struct {
	SaleID      string          `db:"sale_id"`
	CompanyID   string          `db:"company_id"`
	ClientName  string          `db:"client_name"`
	FishType    string          `db:"fish_type"`
	SaleDate    time.Time       `db:"sale_date"` // DATE column
	Quantity    decimal.Decimal `db:"quantity"`
	Delivered   decimal.Decimal `db:"delivered"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Amount      decimal.Decimal `db:"amount"`
	Payment     decimal.Decimal `db:"payment"`
	Balance     decimal.Decimal `db:"balance"`
	Settled     bool            `db:"settled"`
	Observation string          `db:"observation"`
	Version     int64           `db:"version"`
	AuditFields
}
