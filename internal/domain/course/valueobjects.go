// Package course provides the catalog aggregate consumed by the checkout and
// enrollment flows. Courses are authored elsewhere; this subsystem reads them.
package course

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind distinguishes the two catalog collections. It replaces stringly-typed
// field branching at every call site.
type Kind string

const (
	// KindStandard is a self-paced recorded course
	KindStandard Kind = "standard"
	// KindLive is a scheduled live session
	KindLive Kind = "live"
)

// IsValid checks if the course kind is valid
func (k Kind) IsValid() bool {
	switch k {
	case KindStandard, KindLive:
		return true
	default:
		return false
	}
}

// String returns the string representation of the course kind
func (k Kind) String() string {
	return string(k)
}

// ParseKind parses and validates a course kind from request input
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid course type: %q", s)
	}
	return k, nil
}

// ParseAmountMinorUnits parses a stored decimal price string into integer
// minor-currency units (paise), rounding half up. Leading currency symbols,
// thousands separators and whitespace are tolerated; anything else fails.
// Integer math only, so "79" is exactly 7900 and "1299.995" rounds to 130000.
func ParseAmountMinorUnits(price string) (int64, error) {
	s := strings.TrimSpace(price)

	// Strip a leading currency symbol such as ₹ or $.
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if unicode.IsDigit(r) || r == '.' {
			break
		}
		if unicode.IsSymbol(r) || unicode.IsSpace(r) {
			s = s[size:]
			continue
		}
		return 0, fmt.Errorf("unparsable price %q", price)
	}
	s = strings.ReplaceAll(s, ",", "")

	if s == "" {
		return 0, fmt.Errorf("empty price")
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if hasFrac && fracPart == "" {
		return 0, fmt.Errorf("unparsable price %q", price)
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, fmt.Errorf("unparsable price %q", price)
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, fmt.Errorf("unparsable price %q", price)
		}
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unparsable price %q: %w", price, err)
	}

	// Two minor-unit digits plus one rounding digit.
	frac := fracPart + "000"
	minor, err := strconv.ParseInt(frac[:2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unparsable price %q: %w", price, err)
	}
	amount := whole*100 + minor
	if frac[2] >= '5' {
		amount++
	}

	return amount, nil
}
