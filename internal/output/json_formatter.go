package output

import (
	"github.com/econloss/loss-calculator/internal/domain"
	"github.com/goccy/go-json"
)

// JSONFormatter serializes the analysis results as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(results []*domain.AnalysisResult) ([]byte, error) {
	if results == nil {
		results = []*domain.AnalysisResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
