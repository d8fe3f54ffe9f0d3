package output

import (
	"github.com/shopspring/decimal"

	"mach-cost/core/types"
)

// Report is the wire shape of an estimate. Currency amounts are plain
// JSON numbers; the engine keeps exact decimals internally.
type Report struct {
	TotalMonthly   float64                     `json:"totalMonthly"`
	TotalAnnual    float64                     `json:"totalAnnual"`
	SetupTotal     float64                     `json:"setupTotal"`
	FirstYearTotal float64                     `json:"firstYearTotal"`
	CostByCategory map[string][]EstimateReport `json:"costByCategory"`
	Savings        SavingsReport               `json:"savings"`
	Warnings       []string                    `json:"warnings"`
	Unresolved     []string                    `json:"unresolved,omitempty"`
	Currency       string                      `json:"currency"`
}

// SavingsReport is the wire shape of types.Savings
type SavingsReport struct {
	MonthlyVsAnnual    float64 `json:"monthlyVsAnnual"`
	PercentageDiscount float64 `json:"percentageDiscount"`
}

// EstimateReport is the wire shape of one vendor estimate
type EstimateReport struct {
	Vendor       string     `json:"vendor"`
	Category     string     `json:"category"`
	Tier         TierReport `json:"tier"`
	MonthlyTotal float64    `json:"monthlyTotal"`
	AnnualTotal  float64    `json:"annualTotal"`
	SetupCost    float64    `json:"setupCost"`
	Notes        []string   `json:"notes"`
}

// TierReport is the wire shape of a pricing tier
type TierReport struct {
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	MonthlyPrice   float64          `json:"monthlyPrice"`
	AnnualPrice    float64          `json:"annualPrice"`
	Setup          float64          `json:"setup,omitempty"`
	TransactionFee float64          `json:"transactionFee,omitempty"`
	Features       []string         `json:"features"`
	Discounts      []DiscountReport `json:"discounts,omitempty"`
	Limits         *types.Limits    `json:"limits,omitempty"`
}

// DiscountReport is the wire shape of an advertised discount
type DiscountReport struct {
	Type          string   `json:"type"`
	Value         float64  `json:"value"`
	Label         string   `json:"label"`
	Description   string   `json:"description"`
	Conditions    []string `json:"conditions,omitempty"`
	ExpiresAt     string   `json:"expiresAt,omitempty"`
	MinCommitment string   `json:"minCommitment,omitempty"`
}

// MetricsReport is the wire shape of types.BusinessMetrics
type MetricsReport struct {
	Size           string  `json:"size"`
	MonthlyOrders  int64   `json:"monthlyOrders"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	Users          int64   `json:"users"`
	Products       int64   `json:"products"`
	Countries      int64   `json:"countries"`
}

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// NewReport maps an ArchitectureCost to its wire shape
func NewReport(c *types.ArchitectureCost) Report {
	r := Report{
		TotalMonthly:   money(c.TotalMonthly),
		TotalAnnual:    money(c.TotalAnnual),
		SetupTotal:     money(c.SetupTotal),
		FirstYearTotal: money(c.FirstYearTotal()),
		CostByCategory: make(map[string][]EstimateReport, len(c.CostByCategory)),
		Savings: SavingsReport{
			MonthlyVsAnnual:    money(c.Savings.MonthlyVsAnnual),
			PercentageDiscount: money(c.Savings.PercentageDiscount),
		},
		Warnings:   append([]string{}, c.Warnings...),
		Unresolved: c.Unresolved,
		Currency:   c.Currency.String(),
	}

	for cat, ests := range c.CostByCategory {
		list := make([]EstimateReport, 0, len(ests))
		for _, est := range ests {
			list = append(list, NewEstimateReport(est))
		}
		r.CostByCategory[string(cat)] = list
	}
	return r
}

// NewEstimateReport maps one vendor estimate
func NewEstimateReport(est *types.CostEstimate) EstimateReport {
	return EstimateReport{
		Vendor:       est.Vendor,
		Category:     string(est.Category),
		Tier:         NewTierReport(est.Tier),
		MonthlyTotal: money(est.MonthlyTotal),
		AnnualTotal:  money(est.AnnualTotal),
		SetupCost:    money(est.SetupCost),
		Notes:        append([]string{}, est.Notes...),
	}
}

// NewTierReport maps a pricing tier
func NewTierReport(t types.PricingTier) TierReport {
	tr := TierReport{
		Name:           t.Name,
		Description:    t.Description,
		MonthlyPrice:   money(t.MonthlyPrice),
		AnnualPrice:    money(t.AnnualPrice),
		Setup:          money(t.Setup),
		TransactionFee: money(t.TransactionFee),
		Features:       append([]string{}, t.Features...),
		Limits:         t.Limits,
	}
	for _, d := range t.Discounts {
		tr.Discounts = append(tr.Discounts, DiscountReport{
			Type:          string(d.Type),
			Value:         money(d.Value),
			Label:         FormatDiscount(d),
			Description:   d.Description,
			Conditions:    d.Conditions,
			ExpiresAt:     d.ExpiresAt,
			MinCommitment: d.MinCommitment,
		})
	}
	return tr
}

// NewMetricsReport maps business metrics
func NewMetricsReport(m types.BusinessMetrics) MetricsReport {
	return MetricsReport{
		Size:           string(m.Size),
		MonthlyOrders:  m.MonthlyOrders,
		MonthlyRevenue: money(m.MonthlyRevenue),
		Users:          m.Users,
		Products:       m.Products,
		Countries:      m.Countries,
	}
}
