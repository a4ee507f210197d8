package util

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrInvalidPrice is returned when a price string cannot be read as a non-negative amount.
var ErrInvalidPrice = errors.New("invalid price")

// ParsePrice reads a price typed in either es-AR ("1.234,56") or plain ("1234.56") notation.
//
// When both separators appear the last one is the decimal mark. A single comma is decimal.
// Repeated dots are thousands separators, and so is a single dot followed by exactly three
// digits with a non-zero integer part ("12.500" is twelve thousand five hundred).
func ParsePrice(raw string) (float64, error) {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '$', '\u00a0':
			return -1
		}

		return r
	}, raw)
	if s == "" {
		return 0, errors.Wrapf(ErrInvalidPrice, "empty price %q", raw)
	}

	decimalSep, thousandsSep := priceSeparators(s)
	if thousandsSep != 0 {
		s = strings.ReplaceAll(s, string(thousandsSep), "")
	}
	if decimalSep == ',' {
		s = strings.Replace(s, ",", ".", 1)
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidPrice, "parse %q", raw)
	}
	if value.IsNegative() {
		return 0, errors.Wrapf(ErrInvalidPrice, "negative price %q", raw)
	}

	return value.Round(2).InexactFloat64(), nil
}

func priceSeparators(s string) (decimalSep, thousandsSep rune) {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			return ',', '.'
		}

		return '.', ','
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			return 0, ','
		}

		return ',', 0
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 {
			return 0, '.'
		}
		intPart, fracPart := s[:lastDot], s[lastDot+1:]
		if len(fracPart) == 3 && strings.Trim(intPart, "0") != "" {
			return 0, '.'
		}

		return '.', 0
	default:
		return 0, 0
	}
}

// FormatPrice renders an amount the way es-AR shoppers read it: "1.234,56".
func FormatPrice(amount float64) string {
	fixed := decimal.NewFromFloat(amount).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for idx, digit := range intPart {
		if idx > 0 && (len(intPart)-idx)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	return sign + grouped.String() + "," + fracPart
}

// FormatQuantity renders a kilogram quantity without trailing zeros: 1, 1.5, 0.25.
func FormatQuantity(quantity float64) string {
	return decimal.NewFromFloat(quantity).String()
}
