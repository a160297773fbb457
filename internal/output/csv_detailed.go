package output

import (
	"bytes"
	"encoding/csv"

	"github.com/econloss/loss-calculator/internal/domain"
)

// CSVDetailedExporter writes every valuation row of every series, one line per period.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(results []*domain.AnalysisResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Analysis", "Series", "Year", "Start", "End", "Days", "PortionOfYear", "Age",
		"YearOffset", "WageBase", "GrossEarnings", "AdjustedEarnings", "FringeBenefits", "PresentValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	writeSeries := func(analysis, series string, s domain.SeriesResult) error {
		for _, row := range s.Rows {
			record := []string{
				analysis,
				series,
				intToString(row.Year),
				row.Start.String(),
				row.End.String(),
				intToString(row.Days),
				row.PortionOfYear.StringFixed(4),
				row.Age.StringFixed(1),
				intToString(row.YearOffset),
				row.WageBase.StringFixed(2),
				row.GrossEarnings.StringFixed(2),
				row.AdjustedEarnings.StringFixed(2),
				row.FringeBenefits.StringFixed(2),
				optionalFixed(row.PresentValue),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		return nil
	}

	for _, r := range results {
		if err := writeSeries(r.Name, "pre_injury", r.PreInjury); err != nil {
			return nil, err
		}
		if err := writeSeries(r.Name, "post_injury", r.PostInjury); err != nil {
			return nil, err
		}
		for _, hc := range r.Healthcare {
			if err := writeSeries(r.Name, "healthcare:"+hc.Name, hc.SeriesResult); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
