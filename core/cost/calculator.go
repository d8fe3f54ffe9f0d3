// Package cost prices vendors and whole architectures.
// Every function here is pure with respect to its inputs: no I/O, no shared
// mutable state, and identical inputs always give identical results.
package cost

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"mach-cost/core/tier"
	"mach-cost/core/types"
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
)

// Calculator prices a single vendor
type Calculator struct {
	selector    *tier.Selector
	assumptions Assumptions
	logger      *zap.Logger
}

// NewCalculator creates a calculator. A nil selector or logger gets the default.
func NewCalculator(selector *tier.Selector, assumptions Assumptions, logger *zap.Logger) *Calculator {
	if selector == nil {
		selector = tier.NewSelector()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{
		selector:    selector,
		assumptions: assumptions,
		logger:      logger,
	}
}

// Estimate computes the monthly, annual and setup cost of a vendor
func (c *Calculator) Estimate(vendor *types.Vendor, m types.BusinessMetrics) *types.CostEstimate {
	selection := c.selector.Select(vendor, m)
	t := selection.Tier

	monthly := t.MonthlyPrice
	annual := t.AnnualPrice
	if annual.IsZero() {
		annual = monthly.Mul(monthsPerYear)
	}

	est := &types.CostEstimate{
		Vendor:    vendor.Name,
		Category:  vendor.Category,
		Tier:      t,
		SetupCost: t.Setup,
		Notes:     []string{},
	}

	if t.HasTransactionFee() && c.assumptions.chargesTransactionFees(vendor.Category) {
		perMonth := t.TransactionFee.Mul(decimal.NewFromInt(m.MonthlyOrders))
		monthly = monthly.Add(perMonth)
		annual = annual.Add(perMonth.Mul(monthsPerYear))
		est.Notes = append(est.Notes, fmt.Sprintf("Includes $%s per transaction (%d orders/month)",
			t.TransactionFee.String(), m.MonthlyOrders))
	}

	switch vendor.PricingModel {
	case types.PricingUsage:
		est.Notes = append(est.Notes, "Pricing may vary based on actual usage")
	case types.PricingRevenueShare:
		share := m.MonthlyRevenue.Mul(c.assumptions.RevenueShareRate)
		monthly = monthly.Add(share)
		annual = annual.Add(share.Mul(monthsPerYear))
		est.Notes = append(est.Notes, fmt.Sprintf("Includes estimated %s%% revenue share",
			c.assumptions.RevenueShareRate.Mul(hundred).String()))
	}

	est.MonthlyTotal = monthly
	est.AnnualTotal = annual

	c.logger.Debug("vendor priced",
		zap.String("vendor", vendor.Name),
		zap.String("tier", t.Name),
		zap.String("reason", string(selection.Reason)),
		zap.String("monthly", monthly.String()),
		zap.String("annual", annual.String()))

	return est
}
