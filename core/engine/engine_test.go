package engine

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mach-cost/core/catalog"
	"mach-cost/core/tier"
	"mach-cost/core/types"
	"mach-cost/internal/errors"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]types.Vendor{
		{
			ID:           "searchly",
			Name:         "Searchly",
			Category:     types.CategorySearch,
			PricingModel: types.PricingFixed,
			Pricing: []types.PricingTier{
				{Name: "Starter", MonthlyPrice: decimal.NewFromInt(100), AnnualPrice: decimal.NewFromInt(1000)},
				{Name: "Enterprise", MonthlyPrice: decimal.NewFromInt(2000), AnnualPrice: decimal.NewFromInt(20000)},
			},
		},
		{
			ID:           "payco",
			Name:         "PayCo",
			Category:     types.CategoryPaymentProvider,
			PricingModel: types.PricingUsage,
			Pricing: []types.PricingTier{
				{Name: "Standard", TransactionFee: decimal.RequireFromString("0.30")},
			},
		},
	})
}

func startupRequest() EstimateRequest {
	arch := types.Architecture{Business: "Shop"}
	arch.Add(types.CategorySearch, "Searchly")
	arch.Add(types.CategoryPaymentProvider, "PayCo", "Ghost")

	return EstimateRequest{
		Architecture: arch,
		Metrics: types.BusinessMetrics{
			MonthlyOrders:  500,
			MonthlyRevenue: decimal.NewFromInt(20000),
		},
	}
}

func TestEstimateInfersSizeAndPrices(t *testing.T) {
	e := NewEngine(testCatalog(), DefaultConfig(), nil)

	result, err := e.Estimate(context.Background(), startupRequest())
	require.NoError(t, err)

	assert.Equal(t, types.SizeStartup, result.Metrics.Size)
	// Searchly Starter $100 plus PayCo 500 x $0.30 = $150
	assert.True(t, result.Cost.TotalMonthly.Equal(decimal.NewFromInt(250)), "got %s", result.Cost.TotalMonthly)
	assert.Equal(t, []string{"Ghost"}, result.Cost.Unresolved)
	assert.Equal(t, 2, result.Metadata.CatalogVendors)
	assert.Equal(t, Version, result.Metadata.Version)
	assert.Len(t, result.Metadata.InputHash, 64)
}

func TestEstimateHashIsDeterministic(t *testing.T) {
	e := NewEngine(testCatalog(), DefaultConfig(), nil)

	a, err := e.Estimate(context.Background(), startupRequest())
	require.NoError(t, err)
	b, err := e.Estimate(context.Background(), startupRequest())
	require.NoError(t, err)

	assert.Equal(t, a.Metadata.InputHash, b.Metadata.InputHash)
	assert.True(t, a.Cost.TotalAnnual.Equal(b.Cost.TotalAnnual))
}

func TestEstimateRejectsInvalidMetrics(t *testing.T) {
	e := NewEngine(testCatalog(), DefaultConfig(), nil)
	req := startupRequest()
	req.Metrics.MonthlyOrders = -1

	_, err := e.Estimate(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeValidation))
}

func TestEstimateHonorsCancelledContext(t *testing.T) {
	e := NewEngine(testCatalog(), DefaultConfig(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Estimate(ctx, startupRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSelectTier(t *testing.T) {
	e := NewEngine(testCatalog(), DefaultConfig(), nil)

	vendor, sel, err := e.SelectTier("searchly", types.BusinessMetrics{Size: types.SizeEnterprise})
	require.NoError(t, err)
	assert.Equal(t, "Searchly", vendor.Name)
	assert.Equal(t, "Enterprise", sel.Tier.Name)
	assert.Equal(t, tier.ReasonSizeMatch, sel.Reason)
}

func TestSelectTierUnknownVendor(t *testing.T) {
	e := NewEngine(testCatalog(), DefaultConfig(), nil)

	_, _, err := e.SelectTier("nope", types.BusinessMetrics{})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}
