// Package engine provides the API-primary estimation engine.
// CLI and HTTP are thin wrappers around this engine.
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"mach-cost/core/catalog"
	"mach-cost/core/cost"
	"mach-cost/core/determinism"
	"mach-cost/core/output"
	"mach-cost/core/tier"
	"mach-cost/core/types"
	"mach-cost/internal/errors"
	"mach-cost/internal/validation"
)

// Version is the engine version reported in estimate metadata
const Version = "1.0.0"

// Config configures the estimation engine
type Config struct {
	// Policy governs tier selection
	Policy tier.Policy

	// Assumptions are the fixed rates used by the calculator
	Assumptions cost.Assumptions

	// Thresholds drive the architecture warnings
	Thresholds cost.WarningThresholds
}

// DefaultConfig returns the stock engine configuration
func DefaultConfig() Config {
	return Config{
		Policy:      tier.DefaultPolicy(),
		Assumptions: cost.DefaultAssumptions(),
		Thresholds:  cost.DefaultWarningThresholds(),
	}
}

// Engine is the primary API for cost estimation
type Engine struct {
	catalog    *catalog.Catalog
	selector   *tier.Selector
	aggregator *cost.Aggregator
	logger     *zap.Logger
	now        func() time.Time
}

// EstimateRequest is the input to one estimation
type EstimateRequest struct {
	Architecture types.Architecture    `json:"architecture"`
	Metrics      types.BusinessMetrics `json:"metrics"`
}

// NewEngine creates a new estimation engine over a catalog snapshot
func NewEngine(cat *catalog.Catalog, cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	selector := tier.NewSelector(
		tier.WithPolicy(cfg.Policy),
		tier.WithLogger(logger.Named("tier")),
	)
	calculator := cost.NewCalculator(selector, cfg.Assumptions, logger.Named("cost"))
	rules := cost.DefaultWarningRules(cfg.Thresholds)

	return &Engine{
		catalog:    cat,
		selector:   selector,
		aggregator: cost.NewAggregator(cat, calculator, rules, logger.Named("aggregator")),
		logger:     logger,
		now:        time.Now,
	}
}

// Catalog returns the catalog snapshot the engine prices against
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Estimate prices an architecture for the given metrics.
// An empty size is inferred from the raw volume before pricing.
func (e *Engine) Estimate(ctx context.Context, req EstimateRequest) (*output.EstimationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validation.Struct(req.Metrics); err != nil {
		return nil, err
	}

	start := e.now()
	metrics := req.Metrics.WithInferredSize()

	hash, err := determinism.HashJSON(EstimateRequest{Architecture: req.Architecture, Metrics: metrics})
	if err != nil {
		return nil, errors.Internal("failed to hash input", err)
	}

	result := e.aggregator.Calculate(req.Architecture, metrics)

	e.logger.Debug("estimate complete",
		zap.String("business", req.Architecture.Business),
		zap.String("size", string(metrics.Size)),
		zap.Int("vendors", result.EstimateCount()),
		zap.Int("unresolved", len(result.Unresolved)),
		zap.String("monthly", result.TotalMonthly.String()),
		zap.String("input", hash.Short()),
	)

	return &output.EstimationResult{
		Architecture: req.Architecture,
		Metrics:      metrics,
		Cost:         result,
		Metadata: output.EstimationMetadata{
			Timestamp:      start.UTC().Format(time.RFC3339),
			Duration:       e.now().Sub(start).String(),
			InputHash:      hash.Hex(),
			Version:        Version,
			CatalogVendors: e.catalog.Len(),
		},
	}, nil
}

// SelectTier picks the tier for a catalog vendor found by id or name
func (e *Engine) SelectTier(vendor string, m types.BusinessMetrics) (*types.Vendor, tier.Selection, error) {
	if err := validation.Struct(m); err != nil {
		return nil, tier.Selection{}, err
	}

	v, ok := e.catalog.Find(vendor)
	if !ok {
		return nil, tier.Selection{}, errors.NotFound("vendor", vendor)
	}
	return v, e.selector.Select(v, m.WithInferredSize()), nil
}
