package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mach-cost/core/output"
	"mach-cost/core/ui"
)

var tierMetrics metricsFlags

var tierCmd = &cobra.Command{
	Use:   "tier <vendor>",
	Short: "Show which pricing tier a vendor would be priced at",
	Long: `Show the pricing tier picked for a vendor and the rule that picked it.

The vendor is matched by catalog id or name, ignoring case.`,
	Args: cobra.ExactArgs(1),
	RunE: runTier,
}

func init() {
	rootCmd.AddCommand(tierCmd)
	tierMetrics.register(tierCmd)
}

func runTier(cmd *cobra.Command, args []string) error {
	metrics, err := tierMetrics.resolve(cmd)
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	vendor, sel, err := eng.SelectTier(args[0], metrics)
	if err != nil {
		return err
	}

	w := ui.NewWriter(cmd.OutOrStdout(), noColor)
	w.Header(vendor.Name)
	w.Println("Category:  %s", output.CategoryLabel(vendor.Category))
	w.Println("Size:      %s", metrics.WithInferredSize().Size)
	w.Println("Tier:      %s", sel.Tier.Name)
	w.Println("Reason:    %s", sel.Reason)
	w.Println("Monthly:   %s", output.FormatCurrency(sel.Tier.MonthlyPrice))
	if sel.Tier.AnnualPrice.IsPositive() {
		w.Println("Annual:    %s", output.FormatCurrency(sel.Tier.AnnualPrice))
	}
	if sel.Tier.Setup.IsPositive() {
		w.Println("Setup:     %s", output.FormatCurrency(sel.Tier.Setup))
	}
	if sel.Tier.HasTransactionFee() {
		w.Println("Per order: $%s", sel.Tier.TransactionFee.StringFixed(2))
	}
	for _, d := range sel.Tier.Discounts {
		w.Success("%s %s", output.FormatDiscount(d), d.Description)
	}
	if vendor.PricingNotes != "" {
		w.Info("%s", vendor.PricingNotes)
	}

	if err := w.Err(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
