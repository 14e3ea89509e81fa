package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// FishType is the species sold on a sale line.
type FishType string

const (
	Tilapia   FishType = "tilapia"
	Pangasius FishType = "pangasius"
)

// IsValid reports whether f is a known fish type.
func (f FishType) IsValid() bool {
	switch f {
	case Tilapia, Pangasius:
		return true
	}
	return false
}

// observationSeparator joins notes appended to a sale's observation.
const observationSeparator = " | "

var (
	ErrNonPositiveQuantity  = fmt.Errorf("%w: quantity must be greater than zero", apperrors.ErrValidation)
	ErrNonPositiveUnitPrice = fmt.Errorf("%w: unit price must be greater than zero", apperrors.ErrValidation)
	ErrNonPositiveAmount    = fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	ErrNegativePayment      = fmt.Errorf("%w: payment cannot be negative", apperrors.ErrValidation)
	ErrInvalidDelivered     = fmt.Errorf("%w: delivered quantity must be between zero and the ordered quantity", apperrors.ErrValidation)
	ErrOverDelivery         = fmt.Errorf("%w: delivery exceeds the quantity left to deliver", apperrors.ErrValidation)
	ErrInvalidFishType      = fmt.Errorf("%w: fish type must be tilapia or pangasius", apperrors.ErrValidation)
	ErrMissingDate          = fmt.Errorf("%w: sale date is required", apperrors.ErrValidation)
	ErrNothingToSettle      = fmt.Errorf("%w: sale has no outstanding debt to settle", apperrors.ErrValidation)
	ErrNoCredit             = fmt.Errorf("%w: sale holds no credit", apperrors.ErrValidation)
	ErrRefundExceedsCredit  = fmt.Errorf("%w: refund exceeds the available credit", apperrors.ErrValidation)

	ErrNotADebt                = fmt.Errorf("%w: debt sale has no outstanding balance", apperrors.ErrConflict)
	ErrNotACredit              = fmt.Errorf("%w: credit sale holds no credit", apperrors.ErrConflict)
	ErrCompensationExceeds     = fmt.Errorf("%w: amount to use exceeds the available credit or debt", apperrors.ErrConflict)
	ErrCompensationSameSale    = fmt.Errorf("%w: debt and credit must be different sales", apperrors.ErrValidation)
	ErrCompensationClientMatch = fmt.Errorf("%w: debt and credit belong to different clients", apperrors.ErrConflict)
	ErrStaleVersion            = fmt.Errorf("%w: sale was modified by another request", apperrors.ErrConflict)
)

// Sale is a single sale line and its monetary state.
// Balance is positive while the client owes money and negative when the
// company holds a credit for the client.
type Sale struct {
	SaleID      string          `json:"saleID"`
	CompanyID   string          `json:"companyID"`
	ClientName  string          `json:"clientName"`
	FishType    FishType        `json:"fishType"`
	Date        time.Time       `json:"date"`
	Quantity    decimal.Decimal `json:"quantity"`  // kg ordered
	Delivered   decimal.Decimal `json:"delivered"` // kg delivered so far
	UnitPrice   decimal.Decimal `json:"unitPrice"` // price per kg
	Amount      decimal.Decimal `json:"amount"`
	Payment     decimal.Decimal `json:"payment"`
	Balance     decimal.Decimal `json:"balance"`
	Settled     bool            `json:"settled"`
	Observation string          `json:"observation"`
	Version     int64           `json:"version"`
	AuditFields
}

// SaleInput is the operator-supplied field set used to create or replace a sale.
type SaleInput struct {
	ClientName  string
	FishType    FishType
	Date        time.Time
	Quantity    decimal.Decimal
	Delivered   decimal.Decimal
	UnitPrice   decimal.Decimal
	Payment     decimal.Decimal
	Observation string
}

// NewSale validates in and derives amount, balance and the settled flag.
// Identity, ownership and audit fields are left to the caller.
func NewSale(in SaleInput) (Sale, error) {
	s := Sale{}
	if err := s.assign(in); err != nil {
		return Sale{}, err
	}
	return s, nil
}

// Replace overwrites the editable fields with in after validating them,
// recomputing amount and balance. The sale is untouched on error.
func (s *Sale) Replace(in SaleInput) error {
	candidate := *s
	if err := candidate.assign(in); err != nil {
		return err
	}
	*s = candidate
	return nil
}

func (s *Sale) assign(in SaleInput) error {
	clientName, err := ParseClientName(in.ClientName)
	if err != nil {
		return err
	}
	if !in.FishType.IsValid() {
		return ErrInvalidFishType
	}
	if in.Date.IsZero() {
		return ErrMissingDate
	}
	if !in.Quantity.IsPositive() {
		return ErrNonPositiveQuantity
	}
	if !in.UnitPrice.IsPositive() {
		return ErrNonPositiveUnitPrice
	}
	if in.Delivered.IsNegative() || in.Delivered.GreaterThan(in.Quantity) {
		return ErrInvalidDelivered
	}
	if in.Payment.IsNegative() {
		return ErrNegativePayment
	}

	s.ClientName = clientName
	s.FishType = in.FishType
	s.Date = TruncateToDate(in.Date)
	s.Quantity = in.Quantity
	s.Delivered = in.Delivered
	s.UnitPrice = in.UnitPrice
	s.Amount = in.Quantity.Mul(in.UnitPrice)
	s.Payment = in.Payment
	s.Observation = strings.TrimSpace(in.Observation)
	s.recompute()
	return nil
}

// recompute restores balance = amount - payment. A zero balance means settled.
func (s *Sale) recompute() {
	s.Balance = s.Amount.Sub(s.Payment)
	s.Settled = s.Balance.IsZero()
}

// RemainingToDeliver is the quantity still owed to the client.
func (s Sale) RemainingToDeliver() decimal.Decimal {
	return s.Quantity.Sub(s.Delivered)
}

// IsDebt reports whether the client still owes money on this sale.
func (s Sale) IsDebt() bool {
	return s.Balance.IsPositive()
}

// IsCredit reports whether the company owes the client money on this sale.
func (s Sale) IsCredit() bool {
	return s.Balance.IsNegative()
}

// Credit is the absolute credit held on the sale, zero when there is none.
func (s Sale) Credit() decimal.Decimal {
	if !s.IsCredit() {
		return decimal.Zero
	}
	return s.Balance.Neg()
}

// Deliver records qty more kilograms handed to the client.
func (s *Sale) Deliver(qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return ErrNonPositiveQuantity
	}
	if qty.GreaterThan(s.RemainingToDeliver()) {
		return fmt.Errorf("%w: requested %s, remaining %s", ErrOverDelivery, qty, s.RemainingToDeliver())
	}
	s.Delivered = s.Delivered.Add(qty)
	return nil
}

// Pay applies amount to the sale. Overpayment turns into credit.
func (s *Sale) Pay(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	s.Payment = s.Payment.Add(amount)
	s.recompute()
	return nil
}

// Settle pays exactly the outstanding debt and returns the amount applied.
func (s *Sale) Settle() (decimal.Decimal, error) {
	if !s.IsDebt() {
		return decimal.Zero, ErrNothingToSettle
	}
	due := s.Balance
	s.Payment = s.Payment.Add(due)
	s.recompute()
	s.Settled = true
	return due, nil
}

// Refund hands amount of the sale's credit back to the client in cash.
func (s *Sale) Refund(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if !s.IsCredit() {
		return ErrNoCredit
	}
	if amount.GreaterThan(s.Credit()) {
		return fmt.Errorf("%w: requested %s, available %s", ErrRefundExceedsCredit, amount, s.Credit())
	}
	s.Payment = s.Payment.Sub(amount)
	s.recompute()
	return nil
}

// AppendObservation concatenates note to the existing observation.
func (s *Sale) AppendObservation(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if s.Observation == "" {
		s.Observation = note
		return
	}
	s.Observation = s.Observation + observationSeparator + note
}

// CheckVersion fails with ErrStaleVersion when expected is set and differs from the stored version.
func (s Sale) CheckVersion(expected *int64) error {
	if expected != nil && *expected != s.Version {
		return fmt.Errorf("%w: expected version %d, current %d", ErrStaleVersion, *expected, s.Version)
	}
	return nil
}

// Compensate moves amount of credit's overpayment onto debt without any cash movement.
// Both sales are left unchanged when an error is returned.
func Compensate(debt, credit *Sale, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if debt.SaleID == credit.SaleID {
		return ErrCompensationSameSale
	}
	if debt.ClientName != credit.ClientName {
		return fmt.Errorf("%w: %s vs %s", ErrCompensationClientMatch, debt.ClientName, credit.ClientName)
	}
	if !debt.IsDebt() {
		return ErrNotADebt
	}
	if !credit.IsCredit() {
		return ErrNotACredit
	}
	available := decimal.Min(debt.Balance, credit.Credit())
	if amount.GreaterThan(available) {
		return fmt.Errorf("%w: requested %s, available %s", ErrCompensationExceeds, amount, available)
	}

	debt.Payment = debt.Payment.Add(amount)
	debt.recompute()
	credit.Payment = credit.Payment.Sub(amount)
	credit.recompute()
	return nil
}

// TruncateToDate drops the time of day, keeping the calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
