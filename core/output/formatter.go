// Package output provides output formatting.
// This package produces human and machine-readable renderings of a cost estimate.
// Rounding happens here and nowhere else.
package output

import (
	"io"
	"sort"

	"mach-cost/core/determinism"
	"mach-cost/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *EstimationResult) error
}

// EstimationResult contains the complete estimation output
type EstimationResult struct {
	// Architecture is the architecture that was priced
	Architecture types.Architecture `json:"architecture"`

	// Metrics are the business metrics used
	Metrics types.BusinessMetrics `json:"metrics"`

	// Cost is the calculated cost
	Cost *types.ArchitectureCost `json:"cost"`

	// Metadata contains execution context
	Metadata EstimationMetadata `json:"metadata"`
}

// EstimationMetadata contains execution context
type EstimationMetadata struct {
	// Timestamp is when the estimation was performed
	Timestamp string `json:"timestamp"`

	// Duration is how long the estimation took
	Duration string `json:"duration"`

	// InputHash is a hash of the input
	InputHash string `json:"input_hash,omitempty"`

	// Version is the tool version
	Version string `json:"version"`

	// CatalogVendors is the number of vendors in the catalog snapshot
	CatalogVendors int `json:"catalog_vendors"`
}

// Options toggles optional sections
type Options struct {
	ShowNotes     bool
	ShowDiscounts bool
	NoColor       bool
}

// DefaultOptions shows everything
func DefaultOptions() Options {
	return Options{ShowNotes: true, ShowDiscounts: true}
}

// Registry manages formatters
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry with the built-in formatters
func NewRegistry(opts Options) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(&CLIFormatter{Options: opts})
	r.Register(&JSONFormatter{Indent: true})
	r.Register(&MarkdownFormatter{Options: opts})
	return r
}

// Register adds a formatter, replacing any for the same format
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns a formatter for a format type
func (r *Registry) Get(format Format) (Formatter, bool) {
	f, ok := r.formatters[format]
	return f, ok
}

// Formats lists registered formats in sorted order
func (r *Registry) Formats() []Format {
	formats := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// orderedCategories returns result categories in the architecture's order,
// followed by any others sorted by name
func orderedCategories(result *EstimationResult) []types.Category {
	seen := make(map[types.Category]bool)
	var cats []types.Category
	for _, s := range result.Architecture.Selections {
		if _, ok := result.Cost.CostByCategory[s.Category]; ok && !seen[s.Category] {
			seen[s.Category] = true
			cats = append(cats, s.Category)
		}
	}

	for _, c := range determinism.SortedKeys(result.Cost.CostByCategory) {
		if !seen[c] {
			cats = append(cats, c)
		}
	}
	return cats
}
