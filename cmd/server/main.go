// Package main - Entry point for the MACH cost estimation server
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"mach-cost/api"
	"mach-cost/core/catalog"
	"mach-cost/core/engine"
	"mach-cost/internal/config"
	"mach-cost/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", config.DefaultPath(), "Config file")
	addr := flag.String("addr", "", "Server address (overrides config)")
	catalogPath := flag.String("catalog", "", "Vendor catalog file (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	err = run(cfg)
	if err != nil {
		logging.Error("server stopped", zap.Error(err))
	}
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run serves until the listener fails
func run(cfg *config.Config) error {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if cfg.Catalog.Validate {
		if errs := cat.Validate(catalog.DefaultValidationRules()); len(errs) > 0 {
			for _, e := range errs {
				logging.Error("catalog validation", zap.Error(e))
			}
			return fmt.Errorf("catalog is invalid: %d problems", len(errs))
		}
	}

	eng := engine.NewEngine(cat, engine.Config{
		Policy:      cfg.TierPolicy(),
		Assumptions: cfg.Assumptions(),
		Thresholds:  cfg.WarningThresholds(),
	}, logging.Named("engine"))

	server := api.NewServer(version, eng,
		api.WithLogger(logging.Named("http")),
		api.WithMetrics(cfg.Server.MetricsEnabled),
	)

	logging.Info("MACH cost estimation server starting",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr),
		zap.Int("vendors", cat.Len()),
		zap.Bool("metrics", cfg.Server.MetricsEnabled),
	)

	return server.ListenAndServe(cfg.Server.Addr)
}
