package output

import (
	"bytes"
	"encoding/csv"

	"github.com/econloss/loss-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per analysis, in input order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(results []*domain.AnalysisResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Analysis", "Fingerprint", "DateOfInjury", "DateOfReport", "RetirementDate",
		"PreInjuryLoss", "PostInjuryLoss", "HealthcareCost", "FringeBenefitsLoss", "TotalEconomicLoss",
		"PensionValue", "WageLossEstimate", "PostInjuryYears"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range results {
		s := r.Summary
		row := []string{
			r.Name,
			r.Fingerprint.String(),
			FormatDate(r.VitalDates.Injury),
			FormatDate(r.VitalDates.Report),
			FormatDate(r.VitalDates.Retirement),
			s.PreInjuryLoss.StringFixed(2),
			s.PostInjuryLoss.StringFixed(2),
			s.HealthcareCost.StringFixed(2),
			s.FringeBenefitsLoss.StringFixed(2),
			s.TotalEconomicLoss.StringFixed(2),
			s.PensionValue.StringFixed(2),
			s.WageLossEstimate.StringFixed(2),
			intToString(s.PostInjuryYears),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
