package cost

import (
	"go.uber.org/zap"

	"mach-cost/core/tier"
	"mach-cost/core/types"
)

// VendorLookup resolves vendor names exactly
type VendorLookup interface {
	LookupByName(name string) (*types.Vendor, bool)
}

// Aggregator prices a whole architecture against an injected catalog
type Aggregator struct {
	catalog    VendorLookup
	calculator *Calculator
	rules      []WarningRule
	logger     *zap.Logger
}

// NewAggregator creates an aggregator. A nil calculator or logger gets the default.
func NewAggregator(catalog VendorLookup, calculator *Calculator, rules []WarningRule, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calculator == nil {
		calculator = NewCalculator(nil, DefaultAssumptions(), logger)
	}
	return &Aggregator{
		catalog:    catalog,
		calculator: calculator,
		rules:      rules,
		logger:     logger,
	}
}

// CalculateArchitectureCost prices an architecture with the default selector, assumptions and rules
func CalculateArchitectureCost(arch types.Architecture, catalog VendorLookup, m types.BusinessMetrics) *types.ArchitectureCost {
	calc := NewCalculator(tier.NewSelector(), DefaultAssumptions(), nil)
	agg := NewAggregator(catalog, calc, DefaultWarningRules(DefaultWarningThresholds()), nil)
	return agg.Calculate(arch, m)
}

// Calculate resolves every selected vendor, prices it and aggregates the totals.
// A vendor listed under several categories is priced once and filed under the
// category its catalog entry declares. Unknown names are skipped.
func (a *Aggregator) Calculate(arch types.Architecture, m types.BusinessMetrics) *types.ArchitectureCost {
	result := types.NewArchitectureCost()

	for _, name := range arch.VendorNames() {
		vendor, ok := a.catalog.LookupByName(name)
		if !ok {
			a.logger.Debug("vendor not in catalog", zap.String("vendor", name))
			result.Unresolved = append(result.Unresolved, name)
			continue
		}
		result.Add(a.calculator.Estimate(vendor, m))
	}

	annualFromMonthly := result.TotalMonthly.Mul(monthsPerYear)
	result.Savings.MonthlyVsAnnual = annualFromMonthly.Sub(result.TotalAnnual)
	if annualFromMonthly.IsPositive() {
		result.Savings.PercentageDiscount = result.Savings.MonthlyVsAnnual.Div(annualFromMonthly).Mul(hundred)
	}

	result.Warnings = evaluateWarnings(a.rules, result, m)

	a.logger.Debug("architecture priced",
		zap.Int("vendors", result.EstimateCount()),
		zap.Int("unresolved", len(result.Unresolved)),
		zap.String("total_monthly", result.TotalMonthly.String()),
		zap.String("total_annual", result.TotalAnnual.String()),
		zap.String("setup_total", result.SetupTotal.String()))

	return result
}
