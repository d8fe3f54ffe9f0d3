package catalog

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"mach-cost/core/types"
)

func sampleVendors() []types.Vendor {
	return []types.Vendor{
		{ID: "ct", Name: "commercetools", Category: types.CategoryCommerceEngine, MachCompliant: true, PricingModel: types.PricingFixed},
		{ID: "sp", Name: "Shopify Plus", Category: types.CategoryCommerceEngine, MachCompliant: false, PricingModel: types.PricingHybrid},
		{ID: "cf", Name: "Contentful", Category: types.CategoryCMS, MachCompliant: true, PricingModel: types.PricingFixed,
			Pricing: []types.PricingTier{{Name: "Basic", MonthlyPrice: decimal.NewFromInt(300)}}},
	}
}

func TestLookupByNameIsExact(t *testing.T) {
	c := New(sampleVendors())

	if v, ok := c.LookupByName("Contentful"); !ok || v.ID != "cf" {
		t.Fatalf("Expected Contentful, got %v %v", v, ok)
	}
	if _, ok := c.LookupByName("contentful"); ok {
		t.Error("LookupByName must be case-sensitive")
	}
	if _, ok := c.LookupByName("Unknown"); ok {
		t.Error("Unknown vendor should not resolve")
	}
}

func TestFindIsCaseInsensitiveOnIDThenName(t *testing.T) {
	c := New(sampleVendors())

	if v, ok := c.Find("CT"); !ok || v.Name != "commercetools" {
		t.Errorf("Expected id match, got %v", v)
	}
	if v, ok := c.Find("  shopify plus "); !ok || v.ID != "sp" {
		t.Errorf("Expected name match, got %v", v)
	}
}

func TestNewDoesNotAliasInput(t *testing.T) {
	vendors := sampleVendors()
	c := New(vendors)
	vendors[0].Name = "changed"

	if _, ok := c.LookupByName("commercetools"); !ok {
		t.Error("Catalog must keep its own copy of vendors")
	}
}

func TestFilterAndGrouping(t *testing.T) {
	c := New(sampleVendors())

	if got := c.Filter(types.CategoryCommerceEngine, true); len(got) != 1 || got[0].Name != "commercetools" {
		t.Errorf("Expected only commercetools, got %d vendors", len(got))
	}
	if got := c.Filter(types.CategoryCommerceEngine, false); len(got) != 2 {
		t.Errorf("Expected 2 commerce engines, got %d", len(got))
	}
	if got := c.Filter("", false); len(got) != 3 {
		t.Errorf("Expected all vendors, got %d", len(got))
	}
	if got := c.MachCompliant(); len(got) != 2 {
		t.Errorf("Expected 2 MACH vendors, got %d", len(got))
	}

	groups := c.ByCategory(true)
	if len(groups[types.CategoryCommerceEngine]) != 1 || len(groups[types.CategoryCMS]) != 1 {
		t.Errorf("Unexpected grouping: %v", groups)
	}

	names := c.VendorNamesByCategory("", true)
	if len(names[types.CategoryCommerceEngine]) != 1 {
		t.Errorf("Non-MACH vendors must not be listed: %v", names)
	}
	if all := c.VendorNamesByCategory(types.CategoryCommerceEngine, false); len(all) != 1 || len(all[types.CategoryCommerceEngine]) != 2 {
		t.Errorf("Expected both commerce engines, got %v", all)
	}

	cats := c.Categories()
	if len(cats) != 2 || cats[0] != types.CategoryCMS {
		t.Errorf("Expected sorted categories [cms commerce_engine], got %v", cats)
	}
}

func TestStats(t *testing.T) {
	stats := New(sampleVendors()).Stats()

	if stats.Total != 3 || stats.MachCompliant != 2 {
		t.Errorf("Unexpected totals: %+v", stats)
	}
	if stats.ContactSales != 2 || stats.Tiers != 1 {
		t.Errorf("Unexpected tier stats: %+v", stats)
	}
	if stats.ByCategory[types.CategoryCommerceEngine] != 2 {
		t.Errorf("Unexpected category stats: %v", stats.ByCategory)
	}
}

func TestValidateReportsProblems(t *testing.T) {
	vendors := sampleVendors()
	vendors = append(vendors,
		types.Vendor{ID: "dup", Name: "Contentful", Category: types.CategoryCMS, PricingModel: types.PricingFixed},
		types.Vendor{ID: "bad-model", Name: "Odd", Category: types.CategorySearch, PricingModel: "barter"},
		types.Vendor{ID: "neg", Name: "Negative", Category: types.CategoryTax, PricingModel: types.PricingFixed,
			Pricing: []types.PricingTier{{Name: "Broken", MonthlyPrice: decimal.NewFromInt(-1)}}},
		types.Vendor{ID: "lim", Name: "Limits", Category: types.CategoryTax, PricingModel: types.PricingFixed,
			Pricing: []types.PricingTier{{Name: "Odd", Limits: &types.Limits{Users: types.Limit(-5)}}}},
	)

	errs := New(vendors).Validate(DefaultValidationRules())
	if len(errs) != 4 {
		t.Fatalf("Expected 4 errors, got %d: %v", len(errs), errs)
	}

	joined := ""
	for _, e := range errs {
		joined += e.Error() + "\n"
	}
	for _, want := range []string{"duplicate name", "unknown pricing model", "negative price", "invalid users limit"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected an error containing %q, got:\n%s", want, joined)
		}
	}
}

func TestMustValidatePanicsOnInvalidCatalog(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Expected panic for invalid catalog")
		}
	}()

	New([]types.Vendor{{Name: "", Category: types.CategoryCMS, PricingModel: types.PricingFixed}}).MustValidate()
}
