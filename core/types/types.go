// Package types defines core domain types shared across all layers.
// This package contains NO cost logic - only type definitions and their helpers.
package types

// Category identifies a functional slot in a composable commerce architecture
type Category string

const (
	CategoryCommerceEngine    Category = "commerce_engine"
	CategoryPIM               Category = "pim"
	CategoryCMS               Category = "cms"
	CategorySearch            Category = "search"
	CategoryPaymentProvider   Category = "payment_provider"
	CategoryTax               Category = "tax"
	CategoryOmnichannel       Category = "omnichannel"
	CategoryAnalytics         Category = "analytics"
	CategoryLoyalty           Category = "loyalty"
	CategoryPersonalization   Category = "personalization"
	CategoryInventory         Category = "inventory"
	CategoryOrderManagement   Category = "order_management"
	CategoryFrontendFramework Category = "frontend_framework"
	CategoryCheckout          Category = "checkout"
	CategoryERP               Category = "erp"
)

// KnownCategories lists the categories the recommendation flow produces, in display order
var KnownCategories = []Category{
	CategoryCommerceEngine,
	CategoryPIM,
	CategoryCMS,
	CategoryOmnichannel,
	CategoryPaymentProvider,
	CategoryTax,
	CategorySearch,
	CategoryLoyalty,
	CategoryAnalytics,
	CategoryPersonalization,
	CategoryCheckout,
	CategoryERP,
	CategoryInventory,
	CategoryOrderManagement,
	CategoryFrontendFramework,
}

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// IsKnown reports whether the category is one of KnownCategories
func (c Category) IsKnown() bool {
	for _, k := range KnownCategories {
		if k == c {
			return true
		}
	}
	return false
}

// PricingModel describes how a vendor bills
type PricingModel string

const (
	PricingFixed        PricingModel = "fixed"
	PricingUsage        PricingModel = "usage"
	PricingRevenueShare PricingModel = "revenue_share"
	PricingHybrid       PricingModel = "hybrid"
)

// IsValid checks if the pricing model is known
func (p PricingModel) IsValid() bool {
	switch p {
	case PricingFixed, PricingUsage, PricingRevenueShare, PricingHybrid:
		return true
	default:
		return false
	}
}

// BusinessSize is the coarse size bucket of the business being priced
type BusinessSize string

const (
	SizeStartup    BusinessSize = "startup"
	SizeSMB        BusinessSize = "smb"
	SizeEnterprise BusinessSize = "enterprise"
)

// IsValid checks if the size is known
func (s BusinessSize) IsValid() bool {
	switch s {
	case SizeStartup, SizeSMB, SizeEnterprise:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (s BusinessSize) String() string {
	return string(s)
}
