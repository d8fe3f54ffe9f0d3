package cmd

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"mach-cost/core/output"
	"mach-cost/core/types"
	"mach-cost/core/ui"
)

var (
	vendorsCategory string
	vendorsAll      bool
	vendorsJSON     bool
)

var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "List catalog vendors",
	Long: `List the vendors in the pricing catalog.

By default only MACH-compliant vendors are shown; use --all to include the rest.`,
	RunE: runVendors,
}

func init() {
	rootCmd.AddCommand(vendorsCmd)

	vendorsCmd.Flags().StringVarP(&vendorsCategory, "category", "c", "", "only list vendors in this category")
	vendorsCmd.Flags().BoolVar(&vendorsAll, "all", false, "include vendors that are not MACH-compliant")
	vendorsCmd.Flags().BoolVar(&vendorsJSON, "json", false, "print vendor names grouped by category as JSON")
}

func runVendors(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	category := types.Category(vendorsCategory)
	if category != "" && !slices.Contains(cat.Categories(), category) {
		return fmt.Errorf("unknown category %q", vendorsCategory)
	}

	if vendorsJSON {
		data, err := json.MarshalIndent(cat.VendorNamesByCategory(category, !vendorsAll), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	vendors := cat.Filter(category, !vendorsAll)

	w := ui.NewWriter(cmd.OutOrStdout(), noColor)
	w.Header(fmt.Sprintf("Vendors (%d)", len(vendors)))

	table := w.NewTable("Name", "Category", "MACH", "Model", "Tiers", "From")
	for _, v := range vendors {
		mach := "no"
		if v.MachCompliant {
			mach = "yes"
		}
		table.AddRow(v.Name, output.CategoryLabel(v.Category), mach, string(v.PricingModel),
			fmt.Sprintf("%d", len(v.Pricing)), startingPrice(v))
	}
	table.Render()

	return w.Err()
}

// startingPrice is the cheapest monthly price, or "contact sales"
func startingPrice(v *types.Vendor) string {
	if len(v.Pricing) == 0 {
		return "contact sales"
	}
	lowest := v.Pricing[0].MonthlyPrice
	for _, t := range v.Pricing[1:] {
		if t.MonthlyPrice.LessThan(lowest) {
			lowest = t.MonthlyPrice
		}
	}
	return output.FormatCurrency(lowest) + "/mo"
}
