package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"mach-cost/core/types"
	"mach-cost/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Engine.RevenueShareRate.Equal(decimal.RequireFromString("0.02")) {
		t.Errorf("Expected default revenue share 0.02, got %s", cfg.Engine.RevenueShareRate)
	}
	if !cfg.Engine.ZeroLimitUnlimited {
		t.Error("Expected zero limits to mean unlimited by default")
	}
}

func TestLoadOverridesEngineAssumptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"engine": {
			"revenue_share_rate": "0.035",
			"zero_limit_unlimited": false,
			"high_monthly_warning": 25000
		},
		"output": {"default_format": "json"}
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cfg.Assumptions().RevenueShareRate.String(); got != "0.035" {
		t.Errorf("Expected 0.035, got %s", got)
	}
	if cfg.TierPolicy().ZeroLimitUnlimited {
		t.Error("Expected strict zero limits")
	}
	if got := cfg.WarningThresholds().HighMonthly.String(); got != "25000" {
		t.Errorf("Expected 25000, got %s", got)
	}
	// untouched fields keep defaults
	if cfg.TierPolicy().LargeOrders != 50000 {
		t.Errorf("Expected default large orders, got %d", cfg.TierPolicy().LargeOrders)
	}
	if len(cfg.Assumptions().TransactionFeeCategories) != 2 {
		t.Errorf("Expected default fee categories, got %v", cfg.Assumptions().TransactionFeeCategories)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("Expected json format, got %s", cfg.Output.DefaultFormat)
	}
}

func TestLoadRejectsInvalidRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"engine": {"revenue_share_rate": 2}}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.IsType(err, errors.TypeConfig) {
		t.Fatalf("Expected config error, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Catalog.Path = "vendors.hcl"
	cfg.Engine.TransactionFeeCategories = []types.Category{types.CategoryPaymentProvider}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Catalog.Path != "vendors.hcl" {
		t.Errorf("Expected catalog path to round-trip, got %s", loaded.Catalog.Path)
	}
	if len(loaded.Engine.TransactionFeeCategories) != 1 {
		t.Errorf("Expected one fee category, got %v", loaded.Engine.TransactionFeeCategories)
	}
}
