// Package core holds the domain model and the pure query engine.
//
// This file contains money parsing and handling. Amounts are stored as
// integer paise to avoid floating-point drift; the wire format is a plain
// decimal number with two fractional digits.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// Money is a positive currency amount in integer minor units (paise).
type Money struct {
	Paise int64
}

func (m Money) Validate() error {
	if m.Paise <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Rupees returns the amount as a float64 for display purposes only.
// Use paise for all arithmetic.
func (m Money) Rupees() float64 {
	return float64(m.Paise) / 100.0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Paise: m.Paise + other.Paise}
}

// MarshalJSON encodes the amount as a bare decimal number, e.g. 1234 paise
// becomes 12.34. The two-digit form round-trips exactly through UnmarshalJSON.
func (m Money) MarshalJSON() ([]byte, error) {
	p := m.Paise
	sign := ""
	if p < 0 {
		sign = "-"
		p = -p
	}
	return []byte(sign + strconv.FormatInt(p/100, 10) + "." + pad2(p%100)), nil
}

// UnmarshalJSON accepts a decimal number or a quoted decimal string.
func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	paise, err := parsePaise(s)
	if err != nil {
		return err
	}
	if neg {
		paise = -paise
	}
	m.Paise = paise
	return nil
}

func pad2(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}

// ParseDecimalToPaise converts a decimal string to paise with half-up
// rounding on the third decimal place. It accepts both dot (12.34) and
// comma (12,34) separators and rejects zero and negative amounts: this is
// the entry-form parser, and the form only admits positive amounts.
func ParseDecimalToPaise(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	paise, err := parsePaise(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return 0, err
	}
	if paise <= 0 {
		return 0, ErrInvalidAmount
	}
	return paise, nil
}

// parsePaise parses an unsigned decimal string into paise. Zero is allowed
// here so the JSON codec can round-trip zero totals.
func parsePaise(s string) (int64, error) {
	if s == "" {
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	// First two fractional digits, half-up rounding on the third.
	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				frac++
			}
		}
	}
	return iv*100 + frac, nil
}
