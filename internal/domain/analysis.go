package domain

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fingerprintNamespace scopes analysis fingerprints so they never collide with other SHA-1 UUIDs.
var fingerprintNamespace = uuid.MustParse("3f9c1e52-7a4d-5b80-9e61-c2d48a0b7f13")

// Analysis is the complete input of one economic-loss computation.
type Analysis struct {
	Name       string           `json:"name"`
	Evaluee    EvalueeProfile   `json:"evaluee"`
	PreInjury  SeriesParameters `json:"pre_injury"`
	PostInjury SeriesParameters `json:"post_injury"`
	Healthcare []HealthcareItem `json:"healthcare,omitempty"`
	Pension    *PensionSpec     `json:"pension,omitempty"`
}

// Fingerprint returns a name-based UUID over the canonical JSON encoding of the analysis.
// Identical inputs always produce the same fingerprint.
func (a *Analysis) Fingerprint() (uuid.UUID, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode analysis: %w", err)
	}
	return uuid.NewSHA1(fingerprintNamespace, data), nil
}

// LossSummary aggregates the headline figures of an analysis.
type LossSummary struct {
	PreInjuryLoss      decimal.Decimal `json:"pre_injury_loss"`
	PostInjuryLoss     decimal.Decimal `json:"post_injury_loss"`
	HealthcareCost     decimal.Decimal `json:"healthcare_cost"`
	FringeBenefitsLoss decimal.Decimal `json:"fringe_benefits_loss"`
	TotalEconomicLoss  decimal.Decimal `json:"total_economic_loss"`
	PensionValue       decimal.Decimal `json:"pension_value"`
	// WageLossEstimate is the closed-form present value of the level wage difference,
	// reported as a cross-check of the post-injury schedule.
	WageLossEstimate decimal.Decimal `json:"wage_loss_estimate"`
	PostInjuryYears  int             `json:"post_injury_years"`
}

// AnalysisResult is the full output of one analysis.
type AnalysisResult struct {
	Name        string             `json:"name"`
	Fingerprint uuid.UUID          `json:"fingerprint"`
	VitalDates  VitalDates         `json:"vital_dates"`
	PreInjury   SeriesResult       `json:"pre_injury"`
	PostInjury  SeriesResult       `json:"post_injury"`
	Healthcare  []HealthcareSeries `json:"healthcare,omitempty"`
	Pension     *PensionProjection `json:"pension,omitempty"`
	Summary     LossSummary        `json:"summary"`
}
