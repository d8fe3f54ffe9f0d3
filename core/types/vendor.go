package types

import "github.com/shopspring/decimal"

// Unlimited is the sentinel limit value meaning "no ceiling"
const Unlimited int64 = -1

// DiscountType classifies a display-only discount
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
	DiscountFreeMonths DiscountType = "free_months"
)

// Discount is an advertised offer on a tier. Never applied to computed totals.
type Discount struct {
	Type          DiscountType    `json:"type" yaml:"type"`
	Value         decimal.Decimal `json:"value" yaml:"value"`
	Description   string          `json:"description" yaml:"description"`
	Conditions    []string        `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	ExpiresAt     string          `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`
	MinCommitment string          `json:"minCommitment,omitempty" yaml:"minCommitment,omitempty"`
}

// Limits is the optional capacity ceiling of a tier.
// A nil field or Unlimited means no ceiling.
type Limits struct {
	Orders    *int64 `json:"orders,omitempty" yaml:"orders,omitempty"`
	Users     *int64 `json:"users,omitempty" yaml:"users,omitempty"`
	Bandwidth string `json:"bandwidth,omitempty" yaml:"bandwidth,omitempty"`
	Storage   string `json:"storage,omitempty" yaml:"storage,omitempty"`
}

// PricingTier is a named pricing plan within a vendor's offering.
// Zero AnnualPrice, Setup and TransactionFee are treated as absent.
type PricingTier struct {
	Name           string          `json:"name" yaml:"name"`
	Description    string          `json:"description,omitempty" yaml:"description,omitempty"`
	MonthlyPrice   decimal.Decimal `json:"monthlyPrice" yaml:"monthlyPrice"`
	AnnualPrice    decimal.Decimal `json:"annualPrice" yaml:"annualPrice"`
	Setup          decimal.Decimal `json:"setup,omitempty" yaml:"setup,omitempty"`
	TransactionFee decimal.Decimal `json:"transactionFee,omitempty" yaml:"transactionFee,omitempty"`
	Features       []string        `json:"features" yaml:"features"`
	Discounts      []Discount      `json:"discounts,omitempty" yaml:"discounts,omitempty"`
	Limits         *Limits         `json:"limits,omitempty" yaml:"limits,omitempty"`

	// TargetSizes is optional structured metadata naming the sizes this tier is meant for
	TargetSizes []BusinessSize `json:"targetSizes,omitempty" yaml:"targetSizes,omitempty"`
}

// HasTransactionFee reports whether a per-order fee is set
func (t *PricingTier) HasTransactionFee() bool {
	return t.TransactionFee.IsPositive()
}

// Vendor is immutable catalog reference data
type Vendor struct {
	ID               string        `json:"id" yaml:"id"`
	Name             string        `json:"name" yaml:"name"`
	Category         Category      `json:"category" yaml:"category"`
	Description      string        `json:"description,omitempty" yaml:"description,omitempty"`
	MachCompliant    bool          `json:"machCompliant" yaml:"machCompliant"`
	Offerings        []string      `json:"offerings,omitempty" yaml:"offerings,omitempty"`
	Pros             []string      `json:"pros,omitempty" yaml:"pros,omitempty"`
	Cons             []string      `json:"cons,omitempty" yaml:"cons,omitempty"`
	IntegrationNotes string        `json:"integrationNotes,omitempty" yaml:"integrationNotes,omitempty"`
	LogoURL          string        `json:"logoUrl,omitempty" yaml:"logoUrl,omitempty"`
	Website          string        `json:"website,omitempty" yaml:"website,omitempty"`
	Pricing          []PricingTier `json:"pricing" yaml:"pricing"`
	PricingModel     PricingModel  `json:"pricingModel" yaml:"pricingModel"`
	PricingNotes     string        `json:"pricingNotes,omitempty" yaml:"pricingNotes,omitempty"`
}

// Limit returns a pointer to v, for building Limits literals
func Limit(v int64) *int64 {
	return &v
}
