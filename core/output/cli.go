package output

import (
	"fmt"
	"io"

	"mach-cost/core/types"
	"mach-cost/core/ui"
)

// CLIFormatter renders a terminal report
type CLIFormatter struct {
	Options Options
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render produces CLI output
func (f *CLIFormatter) Render(w io.Writer, result *EstimationResult) error {
	out := ui.NewWriter(w, f.Options.NoColor)
	cost := result.Cost

	title := "MACH Architecture Cost Estimate"
	if result.Architecture.Business != "" {
		title += ": " + result.Architecture.Business
	}
	out.Header(title)
	out.Info("Business size: %s (%d orders/month, %s revenue/month)",
		result.Metrics.Size, result.Metrics.MonthlyOrders, FormatCurrency(result.Metrics.MonthlyRevenue))
	out.Println("")

	for _, cat := range orderedCategories(result) {
		out.SubHeader(fmt.Sprintf("%s: %s/month", CategoryLabel(cat), FormatCurrency(cost.CategoryMonthly(cat))))

		table := out.NewTable("Vendor", "Tier", "Monthly", "Annual", "Setup")
		for _, est := range cost.CostByCategory[cat] {
			table.AddRow(est.Vendor, est.Tier.Name,
				FormatCurrency(est.MonthlyTotal), FormatCurrency(est.AnnualTotal), FormatCurrency(est.SetupCost))
		}
		table.Render()

		for _, est := range cost.CostByCategory[cat] {
			f.renderExtras(out, est)
		}
		out.Println("")
	}

	for _, name := range cost.Unresolved {
		out.Warning("Not in catalog: %s", name)
	}
	for _, warning := range cost.Warnings {
		out.Warning("%s", warning)
	}

	if cost.Savings.MonthlyVsAnnual.IsPositive() {
		out.Success("Annual billing saves %s per year (%s)",
			FormatCurrency(cost.Savings.MonthlyVsAnnual), FormatPercent(cost.Savings.PercentageDiscount))
	}

	summary := out.NewCostSummary()
	summary.TotalMonthly = FormatCurrency(cost.TotalMonthly)
	summary.TotalAnnual = FormatCurrency(cost.TotalAnnual)
	summary.SetupTotal = FormatCurrency(cost.SetupTotal)
	summary.FirstYearTotal = FormatCurrency(cost.FirstYearTotal())
	summary.Vendors = cost.EstimateCount()
	summary.Warnings = len(cost.Warnings)
	summary.Render()

	if result.Metadata.Duration != "" {
		out.Println("")
		out.Debug("Estimation completed in %s", result.Metadata.Duration)
	}

	return out.Err()
}

func (f *CLIFormatter) renderExtras(out *ui.Writer, est *types.CostEstimate) {
	if f.Options.ShowNotes {
		for _, note := range est.Notes {
			out.Println("  %s: %s", est.Vendor, note)
		}
	}
	if f.Options.ShowDiscounts {
		for _, d := range est.Tier.Discounts {
			out.Println("  %s: %s %s", est.Vendor, FormatDiscount(d), d.Description)
		}
	}
}
