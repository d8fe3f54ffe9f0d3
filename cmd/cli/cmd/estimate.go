package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mach-cost/core/engine"
	"mach-cost/core/output"
	"mach-cost/core/types"
	"mach-cost/internal/config"
	"mach-cost/internal/errors"
	"mach-cost/internal/logging"
)

var (
	estimateArchitecture string
	estimateMessage      string
	estimateFormat       string
	estimateOutput       string
	estimateMetrics      metricsFlags
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the cost of a MACH architecture",
	Long: `Estimate the monthly, annual and setup cost of an architecture.

The architecture is a JSON or YAML object mapping categories to vendor names:

  {"business": "Acme", "commerce_engine": ["commercetools"], "search": ["Algolia"]}

Alternatively --message reads a recommendation reply and extracts the
architecture JSON block from it. Use "-" to read from stdin.`,
	RunE: runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().StringVarP(&estimateArchitecture, "architecture", "a", "", "architecture file (json or yaml)")
	estimateCmd.Flags().StringVarP(&estimateMessage, "message", "m", "", "recommendation message containing an architecture block")
	estimateCmd.Flags().StringVarP(&estimateFormat, "format", "f", "", "output format (cli, json, markdown)")
	estimateCmd.Flags().StringVarP(&estimateOutput, "output", "o", "", "write the report to a file instead of stdout")
	estimateMetrics.register(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	var (
		arch types.Architecture
		err  error
	)
	switch {
	case estimateArchitecture != "" && estimateMessage != "":
		return errors.Input("use either --architecture or --message, not both")
	case estimateArchitecture != "":
		arch, err = readArchitecture(cmd, estimateArchitecture)
	case estimateMessage != "":
		arch, err = readMessage(cmd, estimateMessage)
	default:
		return errors.Input("one of --architecture or --message is required")
	}
	if err != nil {
		return err
	}

	metrics, err := estimateMetrics.resolve(cmd)
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	result, err := eng.Estimate(cmd.Context(), engine.EstimateRequest{Architecture: arch, Metrics: metrics})
	if err != nil {
		return err
	}

	logging.Debug("estimate",
		zap.String("input_hash", result.Metadata.InputHash),
		zap.Strings("unresolved", result.Cost.Unresolved))

	return render(cmd, result)
}

func render(cmd *cobra.Command, result *output.EstimationResult) error {
	cfg := config.Get()

	format := output.Format(estimateFormat)
	if format == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}

	registry := output.NewRegistry(output.Options{
		ShowNotes:     cfg.Output.ShowNotes,
		ShowDiscounts: cfg.Output.ShowDiscounts,
		NoColor:       noColor || estimateOutput != "",
	})
	formatter, ok := registry.Get(format)
	if !ok {
		return errors.Newf(errors.TypeInput, "unknown format %q (expected one of %v)", format, registry.Formats())
	}

	w := cmd.OutOrStdout()
	if estimateOutput != "" {
		f, err := os.Create(estimateOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return formatter.Render(w, result)
}
