// Package tier picks the best-fit pricing tier of a vendor for a business.
// Tier names and limits are operator-supplied free text, so selection
// degrades through several signals instead of failing.
package tier

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"mach-cost/core/determinism"
	"mach-cost/core/types"
)

// Reason explains which rule picked a tier
type Reason string

const (
	ReasonContactSales Reason = "contact_sales"
	ReasonSizeMatch    Reason = "size_match"
	ReasonCapacityFit  Reason = "capacity_fit"
	ReasonSmallVolume  Reason = "small_volume"
	ReasonLargeVolume  Reason = "large_volume"
	ReasonMiddleTier   Reason = "middle_tier"
)

// Selection is the outcome of tier selection
type Selection struct {
	Tier   types.PricingTier `json:"tier"`
	Reason Reason            `json:"reason"`
}

// Policy holds the business assumptions of tier selection
type Policy struct {
	// ZeroLimitUnlimited treats a limit of 0 as "no ceiling" rather than "none allowed"
	ZeroLimitUnlimited bool

	// Volume fallback: at or below either small threshold picks the cheapest tier
	SmallOrders  int64
	SmallRevenue decimal.Decimal

	// Volume fallback: at or above either large threshold picks the most expensive tier
	LargeOrders  int64
	LargeRevenue decimal.Decimal
}

// DefaultPolicy returns the standard selection assumptions
func DefaultPolicy() Policy {
	return Policy{
		ZeroLimitUnlimited: true,
		SmallOrders:        1000,
		SmallRevenue:       decimal.NewFromInt(100000),
		LargeOrders:        50000,
		LargeRevenue:       decimal.NewFromInt(5000000),
	}
}

// exceeds reports whether value is over a finite ceiling
func (p Policy) exceeds(limit *int64, value int64) bool {
	if limit == nil || *limit < 0 {
		return false
	}
	if *limit == 0 && p.ZeroLimitUnlimited {
		return false
	}
	return value > *limit
}

// Exceeds reports whether the metrics are over any of the tier's limits
func (p Policy) Exceeds(tier *types.PricingTier, m types.BusinessMetrics) bool {
	if tier.Limits == nil {
		return false
	}
	return p.exceeds(tier.Limits.Orders, m.MonthlyOrders) || p.exceeds(tier.Limits.Users, m.Users)
}

// Selector picks tiers
type Selector struct {
	matcher SizeMatcher
	policy  Policy
	logger  *zap.Logger
}

// Option configures a Selector
type Option func(*Selector)

// WithMatcher replaces the size matching strategy
func WithMatcher(m SizeMatcher) Option {
	return func(s *Selector) { s.matcher = m }
}

// WithPolicy replaces the selection policy
func WithPolicy(p Policy) Option {
	return func(s *Selector) { s.policy = p }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Selector) { s.logger = l }
}

// NewSelector creates a selector with the default matcher and policy
func NewSelector(opts ...Option) *Selector {
	s := &Selector{
		matcher: DefaultMatcher(),
		policy:  DefaultPolicy(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ContactSalesTier is returned for vendors without published pricing
func ContactSalesTier() types.PricingTier {
	return types.PricingTier{
		Name:         "Contact Sales",
		Description:  "Pricing available on request",
		MonthlyPrice: decimal.Zero,
		AnnualPrice:  decimal.Zero,
		Features:     []string{"Contact vendor for pricing"},
	}
}

// SelectTier returns the best-fit tier for the vendor
func (s *Selector) SelectTier(vendor *types.Vendor, m types.BusinessMetrics) types.PricingTier {
	return s.Select(vendor, m).Tier
}

// Select returns the best-fit tier and the rule that picked it
func (s *Selector) Select(vendor *types.Vendor, m types.BusinessMetrics) Selection {
	if len(vendor.Pricing) == 0 {
		return Selection{Tier: ContactSalesTier(), Reason: ReasonContactSales}
	}

	sorted := sortByMonthlyPrice(vendor.Pricing)

	var candidates []*types.PricingTier
	for i := range sorted {
		if s.policy.Exceeds(&sorted[i], m) {
			s.logger.Debug("tier excluded by limits",
				zap.String("vendor", vendor.Name),
				zap.String("tier", sorted[i].Name))
			continue
		}
		candidates = append(candidates, &sorted[i])
	}

	for _, t := range candidates {
		if s.matcher.Matches(t, m.Size) {
			return s.selected(vendor, *t, ReasonSizeMatch)
		}
	}

	for _, t := range candidates {
		if !s.policy.Exceeds(t, m) {
			return s.selected(vendor, *t, ReasonCapacityFit)
		}
	}

	tier, reason := s.byVolume(sorted, m)
	return s.selected(vendor, tier, reason)
}

// byVolume chooses from the full price-sorted list using raw metrics
func (s *Selector) byVolume(sorted []types.PricingTier, m types.BusinessMetrics) (types.PricingTier, Reason) {
	p := s.policy
	last := len(sorted) - 1

	switch {
	case m.MonthlyOrders <= p.SmallOrders || m.MonthlyRevenue.LessThanOrEqual(p.SmallRevenue):
		return sorted[0], ReasonSmallVolume
	case m.MonthlyOrders >= p.LargeOrders || m.MonthlyRevenue.GreaterThanOrEqual(p.LargeRevenue):
		return sorted[last], ReasonLargeVolume
	case len(sorted) < 2:
		return sorted[last], ReasonMiddleTier
	default:
		return sorted[len(sorted)/2], ReasonMiddleTier
	}
}

func (s *Selector) selected(vendor *types.Vendor, t types.PricingTier, reason Reason) Selection {
	s.logger.Debug("tier selected",
		zap.String("vendor", vendor.Name),
		zap.String("tier", t.Name),
		zap.String("reason", string(reason)))
	return Selection{Tier: t, Reason: reason}
}

func sortByMonthlyPrice(tiers []types.PricingTier) []types.PricingTier {
	sorted := make([]types.PricingTier, len(tiers))
	copy(sorted, tiers)
	determinism.SortSlice(sorted, func(a, b types.PricingTier) bool {
		return a.MonthlyPrice.LessThan(b.MonthlyPrice)
	})
	return sorted
}
