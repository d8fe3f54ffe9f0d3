// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"mach-cost/core/cost"
	"mach-cost/core/tier"
	"mach-cost/core/types"
	"mach-cost/internal/errors"
	"mach-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains vendor catalog configuration
	Catalog CatalogConfig `json:"catalog"`

	// Engine contains the business assumptions of the cost engine
	Engine EngineConfig `json:"engine"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig contains catalog settings
type CatalogConfig struct {
	// Path is a JSON, YAML or HCL catalog file; empty uses the bundled catalog
	Path string `json:"path"`

	// Validate rejects catalogs that fail validation at load time
	Validate bool `json:"validate"`
}

// EngineConfig contains cost engine assumptions
type EngineConfig struct {
	// RevenueShareRate is applied to monthly revenue for revenue_share vendors
	RevenueShareRate decimal.Decimal `json:"revenue_share_rate"`

	// TransactionFeeCategories are the categories that pay per-order fees
	TransactionFeeCategories []types.Category `json:"transaction_fee_categories"`

	// ZeroLimitUnlimited treats a tier limit of 0 as no ceiling
	ZeroLimitUnlimited bool `json:"zero_limit_unlimited"`

	// Volume fallback thresholds for tier selection
	SmallOrders  int64           `json:"small_orders"`
	SmallRevenue decimal.Decimal `json:"small_revenue"`
	LargeOrders  int64           `json:"large_orders"`
	LargeRevenue decimal.Decimal `json:"large_revenue"`

	// Warning thresholds
	HighMonthlyWarning    decimal.Decimal `json:"high_monthly_warning"`
	HighSetupWarning      decimal.Decimal `json:"high_setup_warning"`
	StartupMonthlyWarning decimal.Decimal `json:"startup_monthly_warning"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowNotes shows per-vendor notes
	ShowNotes bool `json:"show_notes"`

	// ShowDiscounts shows advertised tier discounts
	ShowDiscounts bool `json:"show_discounts"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// MetricsEnabled exposes /metrics
	MetricsEnabled bool `json:"metrics_enabled"`
}

// Default returns a default configuration
func Default() *Config {
	selection := tier.DefaultPolicy()
	assumptions := cost.DefaultAssumptions()
	warnings := cost.DefaultWarningThresholds()

	return &Config{
		Version: "1.0",
		Catalog: CatalogConfig{
			Path:     "",
			Validate: true,
		},
		Engine: EngineConfig{
			RevenueShareRate:         assumptions.RevenueShareRate,
			TransactionFeeCategories: assumptions.TransactionFeeCategories,
			ZeroLimitUnlimited:       selection.ZeroLimitUnlimited,
			SmallOrders:              selection.SmallOrders,
			SmallRevenue:             selection.SmallRevenue,
			LargeOrders:              selection.LargeOrders,
			LargeRevenue:             selection.LargeRevenue,
			HighMonthlyWarning:       warnings.HighMonthly,
			HighSetupWarning:         warnings.HighSetup,
			StartupMonthlyWarning:    warnings.StartupMonthly,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowNotes:     true,
			ShowDiscounts: true,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			MetricsEnabled: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".mach-cost.json")
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrapf(errors.TypeConfig, err, "reading config %s", path)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "parsing config %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks engine assumptions for values the engine cannot use
func (c *Config) Validate() error {
	e := c.Engine
	if e.RevenueShareRate.IsNegative() || e.RevenueShareRate.GreaterThan(decimal.NewFromInt(1)) {
		return errors.Newf(errors.TypeConfig, "revenue_share_rate must be between 0 and 1, got %s", e.RevenueShareRate)
	}
	if e.SmallOrders < 0 || e.LargeOrders < 0 {
		return errors.New(errors.TypeConfig, "volume thresholds must be non-negative")
	}
	return nil
}

// TierPolicy returns the tier selection policy
func (c *Config) TierPolicy() tier.Policy {
	return tier.Policy{
		ZeroLimitUnlimited: c.Engine.ZeroLimitUnlimited,
		SmallOrders:        c.Engine.SmallOrders,
		SmallRevenue:       c.Engine.SmallRevenue,
		LargeOrders:        c.Engine.LargeOrders,
		LargeRevenue:       c.Engine.LargeRevenue,
	}
}

// Assumptions returns the cost modeling assumptions
func (c *Config) Assumptions() cost.Assumptions {
	return cost.Assumptions{
		RevenueShareRate:         c.Engine.RevenueShareRate,
		TransactionFeeCategories: c.Engine.TransactionFeeCategories,
	}
}

// WarningThresholds returns the budget warning thresholds
func (c *Config) WarningThresholds() cost.WarningThresholds {
	return cost.WarningThresholds{
		HighMonthly:    c.Engine.HighMonthlyWarning,
		HighSetup:      c.Engine.HighSetupWarning,
		StartupMonthly: c.Engine.StartupMonthlyWarning,
	}
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
