package decimal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RateUnit states how a bare rate value is written at an input boundary.
// Inside the engine every rate is a fraction (0.03 is three percent).
type RateUnit string

const (
	// UnitFraction reads bare numbers as fractions: 0.03 means 3%.
	UnitFraction RateUnit = "fraction"
	// UnitPercent reads bare numbers as percentages: 3 means 3%.
	UnitPercent RateUnit = "percent"
)

var hundred = decimal.NewFromInt(100)

// ParseRateUnit resolves a unit name. The empty string means UnitFraction.
func ParseRateUnit(s string) (RateUnit, error) {
	switch RateUnit(strings.ToLower(strings.TrimSpace(s))) {
	case "", UnitFraction:
		return UnitFraction, nil
	case UnitPercent, "percentage", "pct":
		return UnitPercent, nil
	}
	return "", fmt.Errorf("unknown rate unit %q (want %q or %q)", s, UnitFraction, UnitPercent)
}

// FromPercent converts a percentage (4.2) to a fraction (0.042).
func FromPercent(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}

// ToPercent converts a fraction (0.042) to a percentage (4.2).
func ToPercent(f decimal.Decimal) decimal.Decimal {
	return f.Mul(hundred)
}

// ParseRate parses a rate literal and returns it as a fraction.
// A trailing '%' always marks a percentage; otherwise the value is read in the given unit.
func ParseRate(s string, unit RateUnit) (decimal.Decimal, error) {
	v, isPercent, err := SplitRate(s)
	if err != nil {
		return decimal.Zero, err
	}
	if isPercent || unit == UnitPercent {
		return FromPercent(v), nil
	}
	return v, nil
}

// SplitRate parses a rate literal without converting it, reporting whether it carried a '%' suffix.
func SplitRate(s string) (value decimal.Decimal, isPercent bool, err error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		isPercent = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}
	value, err = decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	return value, isPercent, nil
}
