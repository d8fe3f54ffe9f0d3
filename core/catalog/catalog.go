// Package catalog - Vendor catalog
// Holds the point-in-time vendor snapshot the cost engine prices against.
// A catalog is built once and never mutated afterwards.
package catalog

import (
	"sort"
	"strings"

	"mach-cost/core/types"
)

// Catalog is an immutable, ordered set of vendors
type Catalog struct {
	vendors []*types.Vendor
	byName  map[string]*types.Vendor
}

// New creates a catalog from a vendor list. Order is preserved; when two
// vendors share a name the first one wins lookups (Validate reports it).
func New(vendors []types.Vendor) *Catalog {
	c := &Catalog{
		vendors: make([]*types.Vendor, 0, len(vendors)),
		byName:  make(map[string]*types.Vendor, len(vendors)),
	}
	for i := range vendors {
		v := vendors[i]
		c.vendors = append(c.vendors, &v)
		if _, exists := c.byName[v.Name]; !exists {
			c.byName[v.Name] = &v
		}
	}
	return c
}

// LookupByName returns the vendor with exactly this name (case-sensitive)
func (c *Catalog) LookupByName(name string) (*types.Vendor, bool) {
	v, ok := c.byName[name]
	return v, ok
}

// Find does a case-insensitive match on id, then name. Used by display paths only.
func (c *Catalog) Find(idOrName string) (*types.Vendor, bool) {
	key := strings.ToLower(strings.TrimSpace(idOrName))
	for _, v := range c.vendors {
		if strings.ToLower(v.ID) == key {
			return v, true
		}
	}
	for _, v := range c.vendors {
		if strings.ToLower(v.Name) == key {
			return v, true
		}
	}
	return nil, false
}

// Vendors returns all vendors in catalog order
func (c *Catalog) Vendors() []*types.Vendor {
	result := make([]*types.Vendor, len(c.vendors))
	copy(result, c.vendors)
	return result
}

// Len returns the number of vendors
func (c *Catalog) Len() int {
	return len(c.vendors)
}

// Filter returns vendors in a category (any when empty), optionally MACH-compliant only
func (c *Catalog) Filter(category types.Category, machOnly bool) []*types.Vendor {
	result := []*types.Vendor{}
	for _, v := range c.vendors {
		if category != "" && v.Category != category {
			continue
		}
		if machOnly && !v.MachCompliant {
			continue
		}
		result = append(result, v)
	}
	return result
}

// MachCompliant returns the MACH-compliant vendors
func (c *Catalog) MachCompliant() []*types.Vendor {
	return c.Filter("", true)
}

// ByCategory groups vendors by category
func (c *Catalog) ByCategory(machOnly bool) map[types.Category][]*types.Vendor {
	groups := make(map[types.Category][]*types.Vendor)
	for _, v := range c.vendors {
		if _, ok := groups[v.Category]; !ok {
			groups[v.Category] = []*types.Vendor{}
		}
		if machOnly && !v.MachCompliant {
			continue
		}
		groups[v.Category] = append(groups[v.Category], v)
	}
	return groups
}

// Categories returns the distinct categories in sorted order
func (c *Catalog) Categories() []types.Category {
	seen := make(map[types.Category]bool)
	var result []types.Category
	for _, v := range c.vendors {
		if !seen[v.Category] {
			seen[v.Category] = true
			result = append(result, v.Category)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// VendorNamesByCategory lists vendor names per category, narrowed like Filter
func (c *Catalog) VendorNamesByCategory(category types.Category, machOnly bool) map[types.Category][]string {
	names := make(map[types.Category][]string)
	for _, v := range c.Filter(category, machOnly) {
		names[v.Category] = append(names[v.Category], v.Name)
	}
	return names
}

// Stats returns catalog statistics
func (c *Catalog) Stats() Stats {
	stats := Stats{
		ByCategory:     make(map[types.Category]int),
		ByPricingModel: make(map[types.PricingModel]int),
	}

	for _, v := range c.vendors {
		stats.Total++
		stats.ByCategory[v.Category]++
		stats.ByPricingModel[v.PricingModel]++
		if v.MachCompliant {
			stats.MachCompliant++
		}
		if len(v.Pricing) == 0 {
			stats.ContactSales++
		}
		stats.Tiers += len(v.Pricing)
	}

	return stats
}

// Stats holds catalog statistics
type Stats struct {
	Total          int                        `json:"totalVendors"`
	MachCompliant  int                        `json:"machCompliantCount"`
	ContactSales   int                        `json:"contactSalesCount"`
	Tiers          int                        `json:"tierCount"`
	ByCategory     map[types.Category]int     `json:"byCategory"`
	ByPricingModel map[types.PricingModel]int `json:"byPricingModel"`
}
