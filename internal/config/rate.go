package config

import (
	"fmt"

	money "github.com/econloss/loss-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RateValue is a rate as written in an input file: a bare number or a '%'-suffixed string.
// It is converted to the engine's fractional form by Fraction.
type RateValue struct {
	Raw     decimal.Decimal
	Percent bool
	Set     bool
}

// UnmarshalYAML accepts scalars such as 0.03, 3, "3%" or "4.20%".
func (r *RateValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: rate must be a scalar", value.Line)
	}
	v, pct, err := money.SplitRate(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*r = RateValue{Raw: v, Percent: pct, Set: true}
	return nil
}

// Fraction returns the rate as a fraction, reading bare values in the given unit.
func (r RateValue) Fraction(unit money.RateUnit) decimal.Decimal {
	if !r.Set {
		return decimal.Zero
	}
	if r.Percent || unit == money.UnitPercent {
		return money.FromPercent(r.Raw)
	}
	return r.Raw
}

// rateSet collects the rates of one series so their notation can be checked together.
type rateSet map[string]*RateValue

// checkConsistent rejects series that mix '%'-suffixed and bare fractional rates.
// Zero values are unambiguous and ignored.
func (rs rateSet) checkConsistent(unit money.RateUnit) error {
	if unit == money.UnitPercent {
		return nil
	}
	var percentField, fractionField string
	for _, name := range sortedKeys(rs) {
		r := rs[name]
		if r == nil || !r.Set || r.Raw.IsZero() {
			continue
		}
		if r.Percent {
			if percentField == "" {
				percentField = name
			}
		} else if fractionField == "" {
			fractionField = name
		}
	}
	if percentField != "" && fractionField != "" {
		return fmt.Errorf("%s is written as a percentage but %s as a fraction; use one notation or set rate_units", percentField, fractionField)
	}
	return nil
}
