package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mach-cost/core/types"
	"mach-cost/internal/errors"
)

const jsonCatalog = `[
  {
    "id": "stripe",
    "name": "Stripe",
    "category": "payment_provider",
    "machCompliant": true,
    "pricingModel": "usage",
    "pricing": [
      {"name": "Standard", "monthlyPrice": 0, "annualPrice": 0, "transactionFee": 0.30, "features": []}
    ]
  }
]`

const yamlCatalog = `
vendors:
  - id: algolia
    name: Algolia
    category: search
    machCompliant: true
    pricingModel: usage
    pricing:
      - name: Build
        monthlyPrice: 0
        limits:
          orders: 1000
      - name: Grow
        monthlyPrice: 500.50
        annualPrice: 5400
`

const hclCatalog = `
vendor "Akeneo" {
  id             = "akeneo"
  category       = "pim"
  mach_compliant = true
  pricing_model  = "fixed"

  tier "Growth Edition" {
    monthly_price = 2500
    annual_price  = 27000
    setup         = 5000
    user_limit    = 25
    features      = ["Workflows"]
  }

  tier "Enterprise Edition" {
    monthly_price = 6000
    target_sizes  = ["enterprise"]
  }
}

vendor "Dynamic Yield" {
  category = "personalization"
}
`

func TestParseJSON(t *testing.T) {
	c, err := Parse([]byte(jsonCatalog), FormatJSON, "")
	require.NoError(t, err)

	v, ok := c.LookupByName("Stripe")
	require.True(t, ok)
	assert.Equal(t, types.CategoryPaymentProvider, v.Category)
	assert.Equal(t, "0.3", v.Pricing[0].TransactionFee.String())
}

func TestParseJSONWrapped(t *testing.T) {
	c, err := Parse([]byte(`{"vendors": `+jsonCatalog+`}`), FormatJSON, "")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := Parse([]byte(`[{"name": }]`), FormatJSON, "")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}

func TestParseYAML(t *testing.T) {
	c, err := Parse([]byte(yamlCatalog), FormatYAML, "")
	require.NoError(t, err)

	v, ok := c.LookupByName("Algolia")
	require.True(t, ok)
	require.Len(t, v.Pricing, 2)
	require.NotNil(t, v.Pricing[0].Limits)
	assert.Equal(t, int64(1000), *v.Pricing[0].Limits.Orders)
	assert.Equal(t, "500.5", v.Pricing[1].MonthlyPrice.String())
}

func TestParseHCL(t *testing.T) {
	c, err := Parse([]byte(hclCatalog), FormatHCL, "vendors.hcl")
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	v, ok := c.LookupByName("Akeneo")
	require.True(t, ok)
	assert.True(t, v.MachCompliant)
	require.Len(t, v.Pricing, 2)

	growth := v.Pricing[0]
	assert.Equal(t, "Growth Edition", growth.Name)
	assert.Equal(t, "2500", growth.MonthlyPrice.String())
	assert.Equal(t, "5000", growth.Setup.String())
	require.NotNil(t, growth.Limits)
	assert.Nil(t, growth.Limits.Orders)
	assert.Equal(t, int64(25), *growth.Limits.Users)

	ent := v.Pricing[1]
	assert.Nil(t, ent.Limits)
	assert.Equal(t, []types.BusinessSize{types.SizeEnterprise}, ent.TargetSizes)

	dy, ok := c.LookupByName("Dynamic Yield")
	require.True(t, ok)
	assert.Equal(t, types.PricingFixed, dy.PricingModel)
	assert.Empty(t, dy.Pricing)
}

func TestParseHCLInvalid(t *testing.T) {
	_, err := Parse([]byte(`vendor "x" { category = }`), FormatHCL, "bad.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vendors.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlCatalog), 0644))

	assert.Equal(t, FormatYAML, FormatFromPath(path))
	assert.Equal(t, FormatHCL, FormatFromPath("a/b.HCL"))
	assert.Equal(t, FormatJSON, FormatFromPath("vendors"))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeCatalog))
}

func TestDefaultCatalogIsValid(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Greater(t, c.Len(), 10)

	assert.Empty(t, c.Validate(DefaultValidationRules()))

	_, ok := c.LookupByName("Stripe")
	assert.True(t, ok)
}
