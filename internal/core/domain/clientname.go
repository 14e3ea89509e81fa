package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var clientNamePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// NormalizeClientName folds diacritics, uppercases and strips all whitespace.
// "Ndèye  Fall" becomes "NDEYEFALL".
func NormalizeClientName(raw string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, raw)
	if err != nil {
		folded = raw
	}
	return strings.Join(strings.Fields(strings.ToUpper(folded)), "")
}

// ParseClientName normalizes raw and checks it against the client name pattern.
func ParseClientName(raw string) (string, error) {
	name := NormalizeClientName(raw)
	if !clientNamePattern.MatchString(name) {
		return "", fmt.Errorf("%w: client name %q must contain only letters and digits", apperrors.ErrValidation, raw)
	}
	return name, nil
}
