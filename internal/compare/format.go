package compare

import (
	"github.com/myca/taxgo/internal/domain"
)

// Formatter renders a comparison result for output.
type Formatter interface {
	Format(result *domain.ComparisonResult) (string, error)
}

// tableFormatterAdapter lifts TableFormatter's infallible Format into
// the Formatter interface.
type tableFormatterAdapter struct {
	inner TableFormatter
}

func (a tableFormatterAdapter) Format(result *domain.ComparisonResult) (string, error) {
	return a.inner.Format(result), nil
}

// GetFormatterByName returns the formatter for a format name, or nil if
// the name is unknown. Supported names: json, table, csv.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "json":
		return &JSONFormatter{Pretty: true}
	case "table":
		return tableFormatterAdapter{}
	case "csv":
		return &CSVFormatter{}
	default:
		return nil
	}
}
