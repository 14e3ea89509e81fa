package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
)

const (
	timeFormat = time.RFC3339Nano
	separator  = "|"

	// DefaultLimit applies when a listing request does not ask for a page size.
	DefaultLimit = 20
	// MaxLimit caps the page size of every listing.
	MaxLimit = 100
)

// NormalizeLimit clamps a requested page size into [1, MaxLimit].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeSaleToken creates the keyset cursor of the sales listing, which is ordered
// by sale date, then creation time, then id, all descending.
func EncodeSaleToken(saleDate, createdAt time.Time, saleID string) string {
	return encode(saleDate.Format(timeFormat), createdAt.Format(timeFormat), saleID)
}

// DecodeSaleToken parses a cursor produced by EncodeSaleToken.
func DecodeSaleToken(token string) (time.Time, time.Time, string, error) {
	parts, err := decode(token, 3)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	saleDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, "", invalid("sale date parse", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, "", invalid("created_at parse", err)
	}
	return saleDate, createdAt, parts[2], nil
}

// EncodeTimeIDToken creates a cursor for listings ordered by creation time then id.
func EncodeTimeIDToken(createdAt time.Time, id string) string {
	return encode(createdAt.Format(timeFormat), id)
}

// DecodeTimeIDToken parses a cursor produced by EncodeTimeIDToken.
func DecodeTimeIDToken(token string) (time.Time, string, error) {
	parts, err := decode(token, 2)
	if err != nil {
		return time.Time{}, "", err
	}
	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", invalid("created_at parse", err)
	}
	return createdAt, parts[1], nil
}

func encode(fields ...string) string {
	return base64.URLEncoding.EncodeToString([]byte(strings.Join(fields, separator)))
}

func decode(token string, want int) ([]string, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, invalid("base64 decode", err)
	}
	parts := strings.Split(string(raw), separator)
	if len(parts) != want {
		return nil, invalid("split", fmt.Errorf("expected %d fields, got %d", want, len(parts)))
	}
	return parts, nil
}

func invalid(stage string, err error) error {
	return fmt.Errorf("%w: invalid pagination token (%s): %v", apperrors.ErrValidation, stage, err)
}
