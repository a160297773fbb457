package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/econloss/loss-calculator/internal/domain"
)

// ConsoleFormatter renders each analysis as a set of exhibits: vital dates,
// Exhibit 1 (pre-injury), Exhibit 2 (post-injury), Exhibit 3 (healthcare),
// the pension projection and the loss summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results []*domain.AnalysisResult) ([]byte, error) {
	var buf bytes.Buffer
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		writeAnalysis(&buf, r)
	}
	return buf.Bytes(), nil
}

func writeAnalysis(buf *bytes.Buffer, r *domain.AnalysisResult) {
	title := "ECONOMIC LOSS ANALYSIS: " + r.Name
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", len(title)))
	fmt.Fprintf(buf, "Fingerprint: %s\n\n", r.Fingerprint)

	v := r.VitalDates
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Date of birth:\t%s\n", FormatDate(v.Birth))
	fmt.Fprintf(tw, "Date of injury:\t%s\t(age %s)\n", FormatDate(v.Injury), v.AgeAtInjury.StringFixed(1))
	fmt.Fprintf(tw, "Date of report:\t%s\t(age %s)\n", FormatDate(v.Report), v.AgeAtReport.StringFixed(1))
	fmt.Fprintf(tw, "Retirement:\t%s\n", FormatDate(v.Retirement))
	if v.HasSeparation {
		fmt.Fprintf(tw, "Final separation:\t%s\n", FormatDate(v.Separation))
	}
	if v.HasLifeHorizon {
		fmt.Fprintf(tw, "Life horizon:\t%s\n", FormatDate(v.Death))
	}
	tw.Flush()

	fmt.Fprintln(buf)
	writeEarningsExhibit(buf, "EXHIBIT 1: PRE-INJURY EARNINGS LOSS", r.PreInjury)
	fmt.Fprintln(buf)
	writeEarningsExhibit(buf, "EXHIBIT 2: POST-INJURY EARNINGS LOSS", r.PostInjury)

	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "EXHIBIT 3: HEALTHCARE COSTS")
	if len(r.Healthcare) == 0 {
		fmt.Fprintln(buf, "  No active healthcare items.")
	}
	for _, hc := range r.Healthcare {
		fmt.Fprintf(buf, "\n%s (%s)\n", hc.Name, hc.Boundary)
		writeHealthcareTable(buf, hc.SeriesResult)
	}

	if r.Pension != nil {
		fmt.Fprintln(buf)
		writePension(buf, r.Pension)
	}

	fmt.Fprintln(buf)
	writeSummary(buf, r.Summary)
}

func writeEarningsExhibit(buf *bytes.Buffer, title string, s domain.SeriesResult) {
	fmt.Fprintln(buf, title)
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	header := "Year\tPortion\tAge\tWage Base\tGross Earnings\tAdjusted Earnings\tFringe Benefits"
	if s.Discounted() {
		header += "\tPresent Value"
	}
	fmt.Fprintln(tw, header)
	for _, row := range s.Rows {
		line := fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s\t%s",
			row.Year,
			row.PortionOfYear.StringFixed(4),
			row.Age.StringFixed(1),
			FormatCurrency(row.WageBase),
			FormatCurrency(row.GrossEarnings),
			FormatCurrency(row.AdjustedEarnings),
			FormatCurrency(row.FringeBenefits),
		)
		if s.Discounted() {
			line += "\t" + FormatOptionalCurrency(row.PresentValue)
		}
		fmt.Fprintln(tw, line)
	}
	total := fmt.Sprintf("Total\t\t\t\t\t%s\t%s", FormatCurrency(s.TotalFutureValue), FormatCurrency(s.TotalFringeBenefits))
	if s.Discounted() {
		total += "\t" + FormatOptionalCurrency(s.TotalPresentValue)
	}
	fmt.Fprintln(tw, total)
	tw.Flush()
}

func writeHealthcareTable(buf *bytes.Buffer, s domain.SeriesResult) {
	if len(s.Rows) == 0 {
		fmt.Fprintln(buf, "  No costs in range.")
		return
	}
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	header := "Year\tPortion\tAge\tAnnual Cost\tCost"
	if s.Discounted() {
		header += "\tPresent Value"
	}
	fmt.Fprintln(tw, header)
	for _, row := range s.Rows {
		line := fmt.Sprintf("%d\t%s\t%s\t%s\t%s",
			row.Year,
			row.PortionOfYear.StringFixed(4),
			row.Age.StringFixed(1),
			FormatCurrency(row.WageBase),
			FormatCurrency(row.AdjustedEarnings),
		)
		if s.Discounted() {
			line += "\t" + FormatOptionalCurrency(row.PresentValue)
		}
		fmt.Fprintln(tw, line)
	}
	total := "Total\t\t\t\t" + FormatCurrency(s.TotalFutureValue)
	if s.Discounted() {
		total += "\t" + FormatOptionalCurrency(s.TotalPresentValue)
	}
	fmt.Fprintln(tw, total)
	tw.Flush()
}

// PensionExhibit renders a standalone pension projection.
func PensionExhibit(p *domain.PensionProjection) []byte {
	var buf bytes.Buffer
	writePension(&buf, p)
	return buf.Bytes()
}

func writePension(buf *bytes.Buffer, p *domain.PensionProjection) {
	fmt.Fprintln(buf, "PENSION PROJECTION")
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	switch {
	case p.DefinedBenefit != nil:
		db := p.DefinedBenefit
		fmt.Fprintf(tw, "Type:\t%s\n", p.Type)
		fmt.Fprintf(tw, "Final average salary:\t%s\n", FormatCurrency(db.FinalAverageSalary))
		fmt.Fprintf(tw, "Years of service:\t%s\n", db.YearsOfService.String())
		fmt.Fprintf(tw, "Benefit multiplier:\t%s\n", FormatPercentage(db.BenefitMultiplier))
		fmt.Fprintf(tw, "Annual benefit:\t%s\n", FormatCurrency(db.AnnualBenefit))
	case p.DefinedContribution != nil:
		dc := p.DefinedContribution
		fmt.Fprintf(tw, "Type:\t%s\n", p.Type)
		fmt.Fprintf(tw, "Annual contribution:\t%s\n", FormatCurrency(dc.AnnualContribution))
		fmt.Fprintf(tw, "Expected return:\t%s\n", FormatPercentage(dc.ExpectedReturnRate))
		fmt.Fprintf(tw, "Contribution years:\t%d\n", dc.ContributionYears)
		fmt.Fprintf(tw, "Total contributions:\t%s\n", FormatCurrency(dc.TotalContributions))
		fmt.Fprintf(tw, "Investment growth:\t%s\n", FormatCurrency(dc.InvestmentGrowth))
		fmt.Fprintf(tw, "Accumulated value:\t%s\n", FormatCurrency(dc.AccumulatedValue))
	}
	tw.Flush()
}

func writeSummary(buf *bytes.Buffer, s domain.LossSummary) {
	fmt.Fprintln(buf, "SUMMARY OF ECONOMIC LOSS")
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	for _, c := range LossBreakdown(s) {
		fmt.Fprintf(tw, "%s:\t%s\t%s\n", c.Component, FormatCurrency(c.Amount), FormatPercentage(c.Share))
	}
	fmt.Fprintf(tw, "Total economic loss:\t%s\t\n", FormatCurrency(s.TotalEconomicLoss))
	if !s.PensionValue.IsZero() {
		fmt.Fprintf(tw, "Pension value (not in total):\t%s\t\n", FormatCurrency(s.PensionValue))
	}
	fmt.Fprintf(tw, "Closed-form wage loss estimate:\t%s\t(%d years)\n", FormatCurrency(s.WageLossEstimate), s.PostInjuryYears)
	tw.Flush()
}
