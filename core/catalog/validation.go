// Package catalog - Catalog validation
// Ensures catalog integrity before the engine prices against it.
package catalog

import (
	"fmt"

	"mach-cost/core/types"
)

// ValidationRule is a per-vendor validation rule
type ValidationRule func(*types.Vendor) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateIdentity,
		validatePricingModel,
		validateTierPrices,
		validateTierLimits,
	}
}

// Validate checks a catalog against validation rules, plus name and id uniqueness
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errors []error

	names := make(map[string]int)
	ids := make(map[string]int)
	for i, v := range c.vendors {
		if prev, dup := names[v.Name]; dup && v.Name != "" {
			errors = append(errors, fmt.Errorf("vendor %d: duplicate name %q (first at %d)", i, v.Name, prev))
		} else {
			names[v.Name] = i
		}
		if prev, dup := ids[v.ID]; dup && v.ID != "" {
			errors = append(errors, fmt.Errorf("vendor %d: duplicate id %q (first at %d)", i, v.ID, prev))
		} else {
			ids[v.ID] = i
		}

		for _, rule := range rules {
			if err := rule(v); err != nil {
				errors = append(errors, fmt.Errorf("%s: %w", label(i, v), err))
			}
		}
	}

	return errors
}

func label(i int, v *types.Vendor) string {
	if v.Name != "" {
		return v.Name
	}
	return fmt.Sprintf("vendor %d", i)
}

// validateIdentity ensures the fields the engine keys on are present
func validateIdentity(v *types.Vendor) error {
	if v.Name == "" {
		return fmt.Errorf("name is required")
	}
	if v.Category == "" {
		return fmt.Errorf("category is required")
	}
	return nil
}

// validatePricingModel ensures the pricing model is known
func validatePricingModel(v *types.Vendor) error {
	if !v.PricingModel.IsValid() {
		return fmt.Errorf("unknown pricing model %q", v.PricingModel)
	}
	return nil
}

// validateTierPrices ensures no tier has a negative amount
func validateTierPrices(v *types.Vendor) error {
	for _, t := range v.Pricing {
		if t.Name == "" {
			return fmt.Errorf("tier name is required")
		}
		if t.MonthlyPrice.IsNegative() || t.AnnualPrice.IsNegative() ||
			t.Setup.IsNegative() || t.TransactionFee.IsNegative() {
			return fmt.Errorf("tier %q has a negative price", t.Name)
		}
	}
	return nil
}

// validateTierLimits ensures limits are -1 (unlimited) or non-negative
func validateTierLimits(v *types.Vendor) error {
	for _, t := range v.Pricing {
		if t.Limits == nil {
			continue
		}
		if l := t.Limits.Orders; l != nil && *l < types.Unlimited {
			return fmt.Errorf("tier %q has invalid orders limit %d", t.Name, *l)
		}
		if l := t.Limits.Users; l != nil && *l < types.Unlimited {
			return fmt.Errorf("tier %q has invalid users limit %d", t.Name, *l)
		}
	}
	return nil
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	errors := c.Validate(DefaultValidationRules())
	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Printf("Catalog validation error: %v\n", err)
		}
		panic(fmt.Sprintf("Catalog has %d validation errors", len(errors)))
	}
}
