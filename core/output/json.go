package output

import (
	"encoding/json"
	"io"

	"mach-cost/core/types"
)

// JSONFormatter renders machine-readable JSON
type JSONFormatter struct {
	Indent bool
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

type jsonDocument struct {
	Architecture types.Architecture `json:"architecture"`
	Metrics      MetricsReport      `json:"metrics"`
	Cost         Report             `json:"cost"`
	Metadata     EstimationMetadata `json:"metadata"`
}

// Render produces JSON output
func (f *JSONFormatter) Render(w io.Writer, result *EstimationResult) error {
	doc := jsonDocument{
		Architecture: result.Architecture,
		Metrics:      NewMetricsReport(result.Metrics),
		Cost:         NewReport(result.Cost),
		Metadata:     result.Metadata,
	}

	enc := json.NewEncoder(w)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(doc)
}
