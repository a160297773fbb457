package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/econloss/loss-calculator/internal/domain"
)

// maxConcurrentAnalyses bounds the goroutines started by AssembleAll.
const maxConcurrentAnalyses = 8

// CalculationEngine orchestrates the series of an economic-loss analysis.
// It holds no state besides its logger and is safe for concurrent use.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Assemble runs every series of one analysis. The vital dates are derived once and shared
// by all series. Any error aborts the analysis and no partial result is returned.
func (ce *CalculationEngine) Assemble(ctx context.Context, analysis *domain.Analysis) (*domain.AnalysisResult, error) {
	if analysis == nil {
		return nil, fmt.Errorf("analysis is nil")
	}
	if err := analysis.Evaluee.Validate(); err != nil {
		return nil, fmt.Errorf("evaluee: %w", err)
	}

	fingerprint, err := analysis.Fingerprint()
	if err != nil {
		return nil, err
	}

	dates := analysis.Evaluee.VitalDates()
	ce.Logger.Infof("assembling analysis %q (%s): injury %s, report %s, retirement %s",
		analysis.Name, fingerprint, dates.Injury, dates.Report, dates.Retirement)

	result := &domain.AnalysisResult{
		Name:        analysis.Name,
		Fingerprint: fingerprint,
		VitalDates:  dates,
	}

	if result.PreInjury, err = ce.PreInjurySeries(dates, analysis.PreInjury); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if result.PostInjury, err = ce.PostInjurySeries(dates, analysis.PostInjury); err != nil {
		return nil, err
	}

	for _, item := range analysis.Healthcare {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !item.Active {
			ce.Logger.Debugf("healthcare %q inactive, skipped", item.Name)
			continue
		}
		series, err := ce.HealthcareSeries(dates, item)
		if err != nil {
			return nil, err
		}
		result.Healthcare = append(result.Healthcare, series)
	}

	if analysis.Pension != nil {
		projection, err := ce.projectPension(analysis)
		if err != nil {
			return nil, fmt.Errorf("pension: %w", err)
		}
		result.Pension = &projection
	}

	result.Summary = ce.generateLossSummary(analysis, result)
	ce.Logger.Infof("analysis %q total economic loss %s", analysis.Name, result.Summary.TotalEconomicLoss.StringFixed(2))
	return result, nil
}

// projectPension fills contribution years from the worklife expectancy when a defined
// contribution plan omits them.
func (ce *CalculationEngine) projectPension(analysis *domain.Analysis) (domain.PensionProjection, error) {
	spec := *analysis.Pension
	params := spec.Params
	if spec.Type == domain.DefinedContribution && params.ContributionYears == nil {
		years := int(analysis.Evaluee.WorklifeExpectancy.Floor().IntPart())
		if years < 0 {
			years = 0
		}
		params.ContributionYears = &years
		ce.Logger.Debugf("pension: contribution years defaulted to %d from worklife expectancy", years)
	}
	return ProjectPension(spec.Type, params)
}

// AssembleAll runs independent analyses in parallel and returns the results in input order.
// The first error in input order is returned.
func (ce *CalculationEngine) AssembleAll(ctx context.Context, analyses []*domain.Analysis) ([]*domain.AnalysisResult, error) {
	results := make([]*domain.AnalysisResult, len(analyses))
	errs := make([]error, len(analyses))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentAnalyses)

	for i := range analyses {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[idx], errs[idx] = ce.Assemble(ctx, analyses[idx])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("analysis %d (%s): %w", i, analysisName(analyses[i]), err)
		}
	}
	return results, nil
}

func analysisName(a *domain.Analysis) string {
	if a == nil || a.Name == "" {
		return "unnamed"
	}
	return a.Name
}
