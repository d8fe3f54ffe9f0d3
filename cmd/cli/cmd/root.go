// Package cmd provides the CLI commands for mach-cost.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mach-cost/core/catalog"
	"mach-cost/core/engine"
	"mach-cost/internal/config"
	"mach-cost/internal/logging"
)

const version = "1.0.0"

var (
	cfgFile     string
	catalogPath string
	verbose     bool
	noColor     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mach-cost",
	Short: "Estimate costs for MACH commerce architectures",
	Long: `mach-cost estimates the monthly, annual and setup cost of a composable
commerce architecture from a vendor pricing catalog.

It picks the best-fit pricing tier of every selected vendor for your
business size and volume, then aggregates the totals with warnings.

Examples:
  mach-cost estimate --architecture arch.json --size smb --orders 5000 --revenue 500000
  mach-cost estimate --message reply.md --metrics metrics.yaml --format markdown
  mach-cost vendors --category search
  mach-cost tier commercetools --orders 30000 --revenue 2000000`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mach-cost.json)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "vendor catalog file (json, yaml or hcl; default is the embedded catalog)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog loads the catalog named by --catalog, the config, or the embedded default
func loadCatalog() (*catalog.Catalog, error) {
	cfg := config.Get()

	path := catalogPath
	if path == "" {
		path = cfg.Catalog.Path
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}

	if cfg.Catalog.Validate {
		if errs := cat.Validate(catalog.DefaultValidationRules()); len(errs) > 0 {
			for _, e := range errs {
				logging.Warn("catalog validation", zap.Error(e))
			}
			return nil, errs[0]
		}
	}

	logging.Debug("catalog loaded", zap.String("path", path), zap.Int("vendors", cat.Len()))
	return cat, nil
}

// newEngine builds an engine from the active configuration
func newEngine() (*engine.Engine, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	cfg := config.Get()
	return engine.NewEngine(cat, engine.Config{
		Policy:      cfg.TierPolicy(),
		Assumptions: cfg.Assumptions(),
		Thresholds:  cfg.WarningThresholds(),
	}, logging.Named("engine")), nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mach-cost version %s (engine %s)\n", version, engine.Version)
	},
}
