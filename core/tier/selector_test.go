package tier

import (
	"testing"

	"github.com/shopspring/decimal"

	"mach-cost/core/types"
)

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func metrics(size types.BusinessSize, orders, revenue, users int64) types.BusinessMetrics {
	return types.BusinessMetrics{
		Size:           size,
		MonthlyOrders:  orders,
		MonthlyRevenue: decimal.NewFromInt(revenue),
		Users:          users,
	}
}

func TestSelectEmptyPricingReturnsContactSales(t *testing.T) {
	sel := NewSelector().Select(&types.Vendor{Name: "Mystery"}, metrics(types.SizeSMB, 10, 10, 1))

	if sel.Reason != ReasonContactSales {
		t.Errorf("Expected contact_sales, got %s", sel.Reason)
	}
	if sel.Tier.Name != "Contact Sales" || !sel.Tier.MonthlyPrice.IsZero() {
		t.Errorf("Unexpected sentinel tier: %+v", sel.Tier)
	}
	if len(sel.Tier.Features) != 1 {
		t.Errorf("Expected one feature note, got %v", sel.Tier.Features)
	}
}

func TestSelectExcludesTiersOverOrderLimit(t *testing.T) {
	vendor := &types.Vendor{
		Name: "Cart",
		Pricing: []types.PricingTier{
			{Name: "Basic", MonthlyPrice: price(10), Limits: &types.Limits{Orders: types.Limit(100)}},
			{Name: "Pro", MonthlyPrice: price(50), Limits: &types.Limits{Orders: types.Limit(100000)}},
		},
	}

	sel := NewSelector().Select(vendor, types.BusinessMetrics{MonthlyOrders: 500})
	if sel.Tier.Name != "Pro" {
		t.Errorf("Expected 'Pro', got '%s'", sel.Tier.Name)
	}
	if sel.Reason != ReasonCapacityFit {
		t.Errorf("Expected capacity_fit, got %s", sel.Reason)
	}
}

func TestSelectExcludesTiersOverUserLimit(t *testing.T) {
	vendor := &types.Vendor{
		Name: "PIM",
		Pricing: []types.PricingTier{
			{Name: "Team", MonthlyPrice: price(100), Limits: &types.Limits{Users: types.Limit(5)}},
			{Name: "Business", MonthlyPrice: price(400), Limits: &types.Limits{Users: types.Limit(50)}},
		},
	}

	got := NewSelector().SelectTier(vendor, metrics("", 0, 0, 20))
	if got.Name != "Business" {
		t.Errorf("Expected 'Business', got '%s'", got.Name)
	}
}

func TestSelectNameMatchBeatsPriceOrder(t *testing.T) {
	vendor := &types.Vendor{
		Name: "CMS",
		Pricing: []types.PricingTier{
			{Name: "Enterprise", MonthlyPrice: price(500)},
			{Name: "Startup", MonthlyPrice: price(20)},
		},
	}

	sel := NewSelector().Select(vendor, metrics(types.SizeStartup, 100, 1000, 2))
	if sel.Tier.Name != "Startup" {
		t.Errorf("Expected 'Startup', got '%s'", sel.Tier.Name)
	}
	if sel.Reason != ReasonSizeMatch {
		t.Errorf("Expected size_match, got %s", sel.Reason)
	}

	sel = NewSelector().Select(vendor, metrics(types.SizeEnterprise, 100, 1000, 2))
	if sel.Tier.Name != "Enterprise" {
		t.Errorf("Expected 'Enterprise', got '%s'", sel.Tier.Name)
	}
}

func TestSelectNameMatchSkipsExcludedTier(t *testing.T) {
	vendor := &types.Vendor{
		Name: "Search",
		Pricing: []types.PricingTier{
			{Name: "Small Business", MonthlyPrice: price(30), Limits: &types.Limits{Orders: types.Limit(1000)}},
			{Name: "Scale", MonthlyPrice: price(300)},
		},
	}

	got := NewSelector().SelectTier(vendor, metrics(types.SizeStartup, 5000, 1000, 1))
	if got.Name != "Scale" {
		t.Errorf("Expected 'Scale', got '%s'", got.Name)
	}
}

func TestSelectNameMatchTiesBrokenByPrice(t *testing.T) {
	vendor := &types.Vendor{
		Name: "Loyalty",
		Pricing: []types.PricingTier{
			{Name: "Growth Plus", MonthlyPrice: price(900)},
			{Name: "Growth", MonthlyPrice: price(300)},
			{Name: "Enterprise", MonthlyPrice: price(3000)},
		},
	}

	got := NewSelector().SelectTier(vendor, metrics(types.SizeSMB, 100, 1000, 1))
	if got.Name != "Growth" {
		t.Errorf("Expected 'Growth', got '%s'", got.Name)
	}
}

func TestSelectUnlimitedSentinelNeverExcludes(t *testing.T) {
	vendor := &types.Vendor{
		Name: "Engine",
		Pricing: []types.PricingTier{
			{Name: "Launch", MonthlyPrice: price(100), Limits: &types.Limits{Orders: types.Limit(types.Unlimited)}},
			{Name: "Premium", MonthlyPrice: price(900), Limits: &types.Limits{Orders: types.Limit(10)}},
		},
	}

	got := NewSelector().SelectTier(vendor, metrics("", 1000000, 0, 0))
	if got.Name != "Launch" {
		t.Errorf("Expected 'Launch', got '%s'", got.Name)
	}
}

func TestSelectZeroLimitSemantics(t *testing.T) {
	vendor := &types.Vendor{
		Name: "Tax",
		Pricing: []types.PricingTier{
			{Name: "Free", MonthlyPrice: price(0), Limits: &types.Limits{Orders: types.Limit(0)}},
			{Name: "Paid", MonthlyPrice: price(50)},
		},
	}
	m := metrics("", 10, 0, 0)

	if got := NewSelector().SelectTier(vendor, m); got.Name != "Free" {
		t.Errorf("Default policy treats 0 as unlimited; expected 'Free', got '%s'", got.Name)
	}

	strict := DefaultPolicy()
	strict.ZeroLimitUnlimited = false
	if got := NewSelector(WithPolicy(strict)).SelectTier(vendor, m); got.Name != "Paid" {
		t.Errorf("Strict policy treats 0 as none allowed; expected 'Paid', got '%s'", got.Name)
	}
}

func TestSelectVolumeFallbackWhenAllTiersExcluded(t *testing.T) {
	limited := func(orders int64) *types.Limits { return &types.Limits{Orders: types.Limit(orders)} }
	vendor := &types.Vendor{
		Name: "OMS",
		Pricing: []types.PricingTier{
			{Name: "C", MonthlyPrice: price(300), Limits: limited(10)},
			{Name: "A", MonthlyPrice: price(100), Limits: limited(10)},
			{Name: "B", MonthlyPrice: price(200), Limits: limited(10)},
		},
	}

	tests := []struct {
		name       string
		orders     int64
		revenue    int64
		wantTier   string
		wantReason Reason
	}{
		{"small by revenue", 20000, 50000, "A", ReasonSmallVolume},
		{"large by orders", 60000, 2000000, "C", ReasonLargeVolume},
		{"large by revenue", 20000, 6000000, "C", ReasonLargeVolume},
		{"middle", 20000, 2000000, "B", ReasonMiddleTier},
		{"small orders at threshold", 1000, 2000000, "A", ReasonSmallVolume},
		{"orders just above small", 1001, 2000000, "B", ReasonMiddleTier},
		{"small revenue at threshold", 20000, 100000, "A", ReasonSmallVolume},
		{"revenue just above small", 20000, 100001, "B", ReasonMiddleTier},
		{"large orders at threshold", 50000, 2000000, "C", ReasonLargeVolume},
		{"orders just below large", 49999, 2000000, "B", ReasonMiddleTier},
		{"large revenue at threshold", 20000, 5000000, "C", ReasonLargeVolume},
		{"revenue just below large", 20000, 4999999, "B", ReasonMiddleTier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSelector().Select(vendor, metrics(types.SizeSMB, tt.orders, tt.revenue, 0))
			if sel.Tier.Name != tt.wantTier {
				t.Errorf("Expected tier %s, got %s", tt.wantTier, sel.Tier.Name)
			}
			if sel.Reason != tt.wantReason {
				t.Errorf("Expected reason %s, got %s", tt.wantReason, sel.Reason)
			}
		})
	}
}

func TestSelectMiddleTierWithSingleTier(t *testing.T) {
	vendor := &types.Vendor{
		Name:    "Solo",
		Pricing: []types.PricingTier{{Name: "Only", MonthlyPrice: price(10), Limits: &types.Limits{Orders: types.Limit(5)}}},
	}

	sel := NewSelector().Select(vendor, metrics(types.SizeSMB, 20000, 2000000, 0))
	if sel.Tier.Name != "Only" || sel.Reason != ReasonMiddleTier {
		t.Errorf("Unexpected selection: %s (%s)", sel.Tier.Name, sel.Reason)
	}
}

func TestSelectDoesNotReorderVendorPricing(t *testing.T) {
	vendor := &types.Vendor{
		Name: "Order",
		Pricing: []types.PricingTier{
			{Name: "Expensive", MonthlyPrice: price(500)},
			{Name: "Cheap", MonthlyPrice: price(5)},
		},
	}

	NewSelector().Select(vendor, metrics("", 0, 0, 0))
	if vendor.Pricing[0].Name != "Expensive" {
		t.Error("Select must not mutate catalog data")
	}
}

func TestMetadataMatcherUsesTargetSizes(t *testing.T) {
	vendor := &types.Vendor{
		Name: "Personalize",
		Pricing: []types.PricingTier{
			{Name: "Essentials", MonthlyPrice: price(100)},
			{Name: "Pro", MonthlyPrice: price(800), TargetSizes: []types.BusinessSize{types.SizeEnterprise}},
		},
	}

	got := NewSelector().SelectTier(vendor, metrics(types.SizeEnterprise, 10, 10, 1))
	if got.Name != "Pro" {
		t.Errorf("Expected 'Pro' via metadata, got '%s'", got.Name)
	}

	keywordsOnly := NewSelector(WithMatcher(NewKeywordMatcher()))
	if got := keywordsOnly.SelectTier(vendor, metrics(types.SizeEnterprise, 10, 10, 1)); got.Name != "Essentials" {
		t.Errorf("Keyword matcher ignores metadata; expected 'Essentials', got '%s'", got.Name)
	}
}
