package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownFormatter renders a markdown report
type MarkdownFormatter struct {
	Options Options
}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render produces markdown output
func (f *MarkdownFormatter) Render(w io.Writer, result *EstimationResult) error {
	var b strings.Builder
	cost := result.Cost

	b.WriteString("# MACH Architecture Cost Estimate\n\n")
	if result.Architecture.Business != "" {
		fmt.Fprintf(&b, "**Business:** %s\n\n", result.Architecture.Business)
	}
	fmt.Fprintf(&b, "**Business size:** %s\n\n", result.Metrics.Size)

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Amount |\n")
	b.WriteString("|--------|-------:|\n")
	fmt.Fprintf(&b, "| Monthly | %s |\n", FormatCurrency(cost.TotalMonthly))
	fmt.Fprintf(&b, "| Annual | %s |\n", FormatCurrency(cost.TotalAnnual))
	fmt.Fprintf(&b, "| Setup | %s |\n", FormatCurrency(cost.SetupTotal))
	fmt.Fprintf(&b, "| First year | %s |\n", FormatCurrency(cost.FirstYearTotal()))
	if cost.Savings.MonthlyVsAnnual.IsPositive() {
		fmt.Fprintf(&b, "| Annual billing savings | %s (%s) |\n",
			FormatCurrency(cost.Savings.MonthlyVsAnnual), FormatPercent(cost.Savings.PercentageDiscount))
	}
	b.WriteString("\n")

	cats := orderedCategories(result)
	if len(cats) > 0 {
		b.WriteString("## Costs by Category\n\n")
	}
	for _, cat := range cats {
		fmt.Fprintf(&b, "### %s\n\n", CategoryLabel(cat))
		b.WriteString("| Vendor | Tier | Monthly | Annual | Setup |\n")
		b.WriteString("|--------|------|--------:|-------:|------:|\n")
		for _, est := range cost.CostByCategory[cat] {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", est.Vendor, est.Tier.Name,
				FormatCurrency(est.MonthlyTotal), FormatCurrency(est.AnnualTotal), FormatCurrency(est.SetupCost))
		}
		b.WriteString("\n")

		for _, est := range cost.CostByCategory[cat] {
			if f.Options.ShowNotes {
				for _, note := range est.Notes {
					fmt.Fprintf(&b, "- **%s:** %s\n", est.Vendor, note)
				}
			}
			if f.Options.ShowDiscounts {
				for _, d := range est.Tier.Discounts {
					fmt.Fprintf(&b, "- **%s:** `%s` %s\n", est.Vendor, FormatDiscount(d), d.Description)
				}
			}
		}
		b.WriteString("\n")
	}

	if len(cost.Unresolved) > 0 {
		b.WriteString("## Not in Catalog\n\n")
		for _, name := range cost.Unresolved {
			fmt.Fprintf(&b, "- %s\n", name)
		}
		b.WriteString("\n")
	}

	if len(cost.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, warning := range cost.Warnings {
			fmt.Fprintf(&b, "- %s\n", warning)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
