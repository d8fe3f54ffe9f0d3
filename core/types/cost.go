package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const CurrencyUSD Currency = "USD"

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// CostEstimate is the priced result for one vendor
type CostEstimate struct {
	Vendor       string          `json:"vendor"`
	Category     Category        `json:"category"`
	Tier         PricingTier     `json:"tier"`
	MonthlyTotal decimal.Decimal `json:"monthlyTotal"`
	AnnualTotal  decimal.Decimal `json:"annualTotal"`
	SetupCost    decimal.Decimal `json:"setupCost"`
	Notes        []string        `json:"notes"`
}

// Savings compares paying monthly for a year against the quoted annual prices
type Savings struct {
	MonthlyVsAnnual    decimal.Decimal `json:"monthlyVsAnnual"`
	PercentageDiscount decimal.Decimal `json:"percentageDiscount"`
}

// ArchitectureCost is the aggregate result for a whole architecture
type ArchitectureCost struct {
	TotalMonthly   decimal.Decimal              `json:"totalMonthly"`
	TotalAnnual    decimal.Decimal              `json:"totalAnnual"`
	SetupTotal     decimal.Decimal              `json:"setupTotal"`
	CostByCategory map[Category][]*CostEstimate `json:"costByCategory"`
	Savings        Savings                      `json:"savings"`
	Warnings       []string                     `json:"warnings"`

	// Unresolved lists architecture vendor names with no catalog entry
	Unresolved []string `json:"unresolved,omitempty"`

	Currency Currency `json:"currency"`
}

// NewArchitectureCost creates an empty result
func NewArchitectureCost() *ArchitectureCost {
	return &ArchitectureCost{
		CostByCategory: make(map[Category][]*CostEstimate),
		Warnings:       []string{},
		Currency:       CurrencyUSD,
	}
}

// Add files an estimate under its category and updates the grand totals
func (c *ArchitectureCost) Add(est *CostEstimate) {
	c.CostByCategory[est.Category] = append(c.CostByCategory[est.Category], est)
	c.TotalMonthly = c.TotalMonthly.Add(est.MonthlyTotal)
	c.TotalAnnual = c.TotalAnnual.Add(est.AnnualTotal)
	c.SetupTotal = c.SetupTotal.Add(est.SetupCost)
}

// CategoryMonthly returns the monthly subtotal for one category
func (c *ArchitectureCost) CategoryMonthly(category Category) decimal.Decimal {
	total := decimal.Zero
	for _, est := range c.CostByCategory[category] {
		total = total.Add(est.MonthlyTotal)
	}
	return total
}

// EstimateCount returns the number of priced vendors
func (c *ArchitectureCost) EstimateCount() int {
	n := 0
	for _, ests := range c.CostByCategory {
		n += len(ests)
	}
	return n
}

// FirstYearTotal is the annual total plus one-time setup
func (c *ArchitectureCost) FirstYearTotal() decimal.Decimal {
	return c.TotalAnnual.Add(c.SetupTotal)
}
