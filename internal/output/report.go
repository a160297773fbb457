package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/econloss/loss-calculator/internal/domain"
)

// ResolveFormatter looks up a formatter, enriching the error with the available names.
func ResolveFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render formats results and writes them to w.
func Render(w io.Writer, results []*domain.AnalysisResult, format string) error {
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes results in the given format to a file in dir and returns its path.
func GenerateReport(results []*domain.AnalysisResult, format, dir string) (string, error) {
	f, err := ResolveFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, results, dir)
}
