package cost

import (
	"github.com/shopspring/decimal"

	"mach-cost/core/types"
)

// Assumptions are the modeling constants applied on top of catalog prices.
// None of them come from vendors; they are estimates and are surfaced in notes.
type Assumptions struct {
	// RevenueShareRate is the fraction of monthly revenue charged by revenue_share vendors
	RevenueShareRate decimal.Decimal

	// TransactionFeeCategories are the categories whose per-order fees are applied
	TransactionFeeCategories []types.Category
}

// DefaultAssumptions returns the standard modeling constants
func DefaultAssumptions() Assumptions {
	return Assumptions{
		RevenueShareRate: decimal.NewFromFloat(0.02),
		TransactionFeeCategories: []types.Category{
			types.CategoryPaymentProvider,
			types.CategoryCommerceEngine,
		},
	}
}

func (a Assumptions) chargesTransactionFees(category types.Category) bool {
	for _, c := range a.TransactionFeeCategories {
		if c == category {
			return true
		}
	}
	return false
}
