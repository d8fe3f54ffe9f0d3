package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mach-cost/core/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	cfg := filepath.Join(t.TempDir(), "missing.json")
	rootCmd.SetArgs(append([]string{"--config", cfg, "--no-color"}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestReadArchitectureYAMLKeepsOrder(t *testing.T) {
	path := writeFile(t, "arch.yaml", "business: Acme\nsearch: [Algolia]\ncommerce_engine: [commercetools]\n")

	arch, err := readArchitecture(&cobra.Command{}, path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", arch.Business)
	assert.Equal(t, []string{"Algolia", "commercetools"}, arch.VendorNames())
}

func TestReadMetricsYAMLDecimal(t *testing.T) {
	path := writeFile(t, "metrics.yml", "size: smb\nmonthlyOrders: 5000\nmonthlyRevenue: 500000.50\n")

	m, err := readMetrics(&cobra.Command{}, path)
	require.NoError(t, err)
	assert.Equal(t, types.SizeSMB, m.Size)
	assert.Equal(t, int64(5000), m.MonthlyOrders)
	assert.True(t, m.MonthlyRevenue.Equal(decimal.RequireFromString("500000.5")), "got %s", m.MonthlyRevenue)
}

func TestMetricsFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "metrics.json", `{"size": "startup", "monthlyOrders": 10}`)

	var f metricsFlags
	cmd := &cobra.Command{}
	f.register(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--metrics", path, "--orders", "2500", "--revenue", "120000"}))

	m, err := f.resolve(cmd)
	require.NoError(t, err)
	assert.Equal(t, types.SizeStartup, m.Size)
	assert.Equal(t, int64(2500), m.MonthlyOrders)
	assert.True(t, m.MonthlyRevenue.Equal(decimal.NewFromInt(120000)))
}

func TestMetricsFlagsRejectBadRevenue(t *testing.T) {
	var f metricsFlags
	cmd := &cobra.Command{}
	f.register(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--revenue", "lots"}))

	_, err := f.resolve(cmd)
	assert.Error(t, err)
}

func TestEstimateCommandJSON(t *testing.T) {
	arch := writeFile(t, "arch.json", `{"business": "Acme", "commerce_engine": ["commercetools"], "payment_provider": ["Stripe"]}`)

	out, err := runCLI(t, "estimate", "--architecture", arch, "--format", "json",
		"--size", "smb", "--orders", "5000", "--revenue", "500000")
	require.NoError(t, err, out)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc), out)

	cost := doc["cost"].(map[string]interface{})
	// commercetools Growth $2,000 + 2% of $500,000, Stripe 5,000 x $0.30
	assert.Equal(t, 13500.0, cost["totalMonthly"])
}

func TestEstimateCommandRequiresInput(t *testing.T) {
	estimateArchitecture, estimateMessage = "", ""
	_, err := runCLI(t, "estimate")
	assert.Error(t, err)
}

func TestTierCommandUnknownVendor(t *testing.T) {
	_, err := runCLI(t, "tier", "no-such-vendor")
	assert.Error(t, err)
}

func TestExtractCommand(t *testing.T) {
	msg := writeFile(t, "reply.md", "**ARCHITECTURE JSON:**\n```json\n{\"business\": \"Acme\", \"cms\": [\"Contentful\"]}\n```\n")

	out, err := runCLI(t, "extract", msg)
	require.NoError(t, err, out)
	assert.Contains(t, out, `"cms": [`)
	assert.Contains(t, out, `"Contentful"`)
}

func TestCatalogValidateEmbedded(t *testing.T) {
	out, err := runCLI(t, "catalog", "validate")
	require.NoError(t, err, out)
	assert.Contains(t, out, "16 vendors")
}

func TestVendorsListsCustomCategory(t *testing.T) {
	t.Cleanup(func() {
		catalogPath, vendorsCategory, vendorsJSON = "", "", false
	})
	path := writeFile(t, "catalog.json", `[
		{"id": "lp", "name": "LoyaltyPro", "category": "loyalty", "machCompliant": true, "pricingModel": "fixed", "pricing": []},
		{"id": "ct", "name": "commercetools", "category": "commerce_engine", "machCompliant": true, "pricingModel": "fixed", "pricing": []}
	]`)

	out, err := runCLI(t, "--catalog", path, "vendors", "--category", "loyalty", "--json")
	require.NoError(t, err)

	var names map[string][]string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Equal(t, map[string][]string{"loyalty": {"LoyaltyPro"}}, names)

	_, err = runCLI(t, "--catalog", path, "vendors", "--category", "search")
	assert.Error(t, err)
}
