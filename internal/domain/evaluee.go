package domain

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/econloss/loss-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// EvalueeProfile holds the identity-independent vital data of the person being evaluated.
type EvalueeProfile struct {
	DateOfBirth            civil.Date      `json:"date_of_birth"`
	DateOfInjury           civil.Date      `json:"date_of_injury"`
	DateOfReport           civil.Date      `json:"date_of_report"`
	WorklifeExpectancy     decimal.Decimal `json:"worklife_expectancy"`
	YearsToFinalSeparation decimal.Decimal `json:"years_to_final_separation"`
	LifeExpectancy         decimal.Decimal `json:"life_expectancy"`
}

// Validate checks that the vital dates are well formed and ordered birth < injury <= report.
func (p EvalueeProfile) Validate() error {
	dates := []struct {
		name string
		d    civil.Date
	}{
		{"date_of_birth", p.DateOfBirth},
		{"date_of_injury", p.DateOfInjury},
		{"date_of_report", p.DateOfReport},
	}
	for _, nd := range dates {
		if !nd.d.IsValid() {
			return fmt.Errorf("%s is not a valid date: %q", nd.name, nd.d.String())
		}
	}
	if !p.DateOfBirth.Before(p.DateOfInjury) {
		return &RangeError{Field: "date_of_birth/date_of_injury", Start: p.DateOfBirth, End: p.DateOfInjury}
	}
	if p.DateOfReport.Before(p.DateOfInjury) {
		return &RangeError{Field: "date_of_injury/date_of_report", Start: p.DateOfInjury, End: p.DateOfReport}
	}
	return nil
}

// AgeAt returns the evaluee's fractional age at the given date.
func (p EvalueeProfile) AgeAt(d civil.Date) decimal.Decimal {
	return dateutil.Age(p.DateOfBirth, d)
}

// VitalDates derives every boundary date once. The result is passed by value
// through an analysis and never recomputed.
func (p EvalueeProfile) VitalDates() VitalDates {
	v := VitalDates{
		Birth:          p.DateOfBirth,
		Injury:         p.DateOfInjury,
		Report:         p.DateOfReport,
		Retirement:     dateutil.AddYears(p.DateOfInjury, p.WorklifeExpectancy),
		AgeAtInjury:    p.AgeAt(p.DateOfInjury),
		AgeAtReport:    p.AgeAt(p.DateOfReport),
		HasSeparation:  p.YearsToFinalSeparation.IsPositive(),
		HasLifeHorizon: p.LifeExpectancy.IsPositive(),
	}
	if v.HasSeparation {
		v.Separation = dateutil.AddYears(p.DateOfInjury, p.YearsToFinalSeparation)
	}
	if v.HasLifeHorizon {
		v.Death = dateutil.AddYears(p.DateOfInjury, p.LifeExpectancy)
	}
	return v
}

// VitalDates is the computed set of boundary dates for one analysis.
// Separation and Death are only meaningful when their Has flags are set.
type VitalDates struct {
	Birth          civil.Date      `json:"date_of_birth"`
	Injury         civil.Date      `json:"date_of_injury"`
	Report         civil.Date      `json:"date_of_report"`
	Retirement     civil.Date      `json:"retirement_date"`
	Separation     civil.Date      `json:"separation_date,omitempty"`
	Death          civil.Date      `json:"date_of_death,omitempty"`
	AgeAtInjury    decimal.Decimal `json:"age_at_injury"`
	AgeAtReport    decimal.Decimal `json:"age_at_report"`
	HasSeparation  bool            `json:"-"`
	HasLifeHorizon bool            `json:"-"`
}
