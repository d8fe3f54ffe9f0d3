package cost

import (
	"github.com/shopspring/decimal"

	"mach-cost/core/types"
)

// WarningRule is an advisory check over an aggregated result
type WarningRule struct {
	Name    string
	Message string
	Applies func(c *types.ArchitectureCost, m types.BusinessMetrics) bool
}

// WarningThresholds are the budget levels behind the default rules. Comparisons are strict.
type WarningThresholds struct {
	HighMonthly    decimal.Decimal
	HighSetup      decimal.Decimal
	StartupMonthly decimal.Decimal
}

// DefaultWarningThresholds returns the standard budget levels
func DefaultWarningThresholds() WarningThresholds {
	return WarningThresholds{
		HighMonthly:    decimal.NewFromInt(10000),
		HighSetup:      decimal.NewFromInt(50000),
		StartupMonthly: decimal.NewFromInt(5000),
	}
}

// DefaultWarningRules returns the standard rules in evaluation order
func DefaultWarningRules(th WarningThresholds) []WarningRule {
	return []WarningRule{
		{
			Name:    "high_monthly",
			Message: "High monthly costs detected. Consider phased implementation.",
			Applies: func(c *types.ArchitectureCost, _ types.BusinessMetrics) bool {
				return c.TotalMonthly.GreaterThan(th.HighMonthly)
			},
		},
		{
			Name:    "high_setup",
			Message: "Significant setup costs. Factor into initial budget planning.",
			Applies: func(c *types.ArchitectureCost, _ types.BusinessMetrics) bool {
				return c.SetupTotal.GreaterThan(th.HighSetup)
			},
		},
		{
			Name:    "startup_budget",
			Message: "Costs may be high for startup budget. Consider starting with fewer vendors.",
			Applies: func(c *types.ArchitectureCost, m types.BusinessMetrics) bool {
				return m.Size == types.SizeStartup && c.TotalMonthly.GreaterThan(th.StartupMonthly)
			},
		},
	}
}

func evaluateWarnings(rules []WarningRule, c *types.ArchitectureCost, m types.BusinessMetrics) []string {
	warnings := []string{}
	for _, r := range rules {
		if r.Applies(c, m) {
			warnings = append(warnings, r.Message)
		}
	}
	return warnings
}
