// Package api - API types for cost estimation
// These types define the wire contract of the HTTP endpoints.
// Currency amounts are plain JSON numbers.
package api

import (
	"mach-cost/core/output"
	"mach-cost/core/tier"
	"mach-cost/core/types"
)

// EstimateRequest is the input to POST /estimate
type EstimateRequest struct {
	Architecture types.Architecture    `json:"architecture"`
	Metrics      types.BusinessMetrics `json:"metrics"`
}

// EstimateResponse is the output of POST /estimate
type EstimateResponse struct {
	RequestID    string               `json:"request_id"`
	Architecture types.Architecture   `json:"architecture"`
	Metrics      output.MetricsReport `json:"metrics"`
	Cost         output.Report        `json:"cost"`
	Metadata     *ResponseMetadata    `json:"metadata"`
}

// ResponseMetadata contains execution context
type ResponseMetadata struct {
	InputHash      string `json:"input_hash"`
	EngineVersion  string `json:"engine_version"`
	CatalogVendors int    `json:"catalog_vendors"`
	DurationMs     int64  `json:"duration_ms"`
}

// TierRequest is the input to POST /tier
type TierRequest struct {
	Vendor  string                `json:"vendor"`
	Metrics types.BusinessMetrics `json:"metrics"`
}

// TierResponse is the output of POST /tier
type TierResponse struct {
	Vendor   string            `json:"vendor"`
	Category types.Category    `json:"category"`
	Size     string            `json:"size"`
	Tier     output.TierReport `json:"tier"`
	Reason   tier.Reason       `json:"reason"`
}

// FilterRequest is the input to POST /vendors/filter
type FilterRequest struct {
	Category types.Category `json:"category"`

	// MachOnly defaults to true when omitted
	MachOnly *bool `json:"machOnly,omitempty"`
}

// FilterResponse is the output of POST /vendors/filter
type FilterResponse struct {
	Data  []VendorReport `json:"data"`
	Count int            `json:"count"`
}

// VendorsResponse is the output of GET /vendors
type VendorsResponse struct {
	All                map[types.Category][]VendorReport `json:"all"`
	MachCompliant      map[types.Category][]VendorReport `json:"machCompliant"`
	Categories         []types.Category                  `json:"categories"`
	TotalVendors       int                               `json:"totalVendors"`
	MachCompliantCount int                               `json:"machCompliantCount"`
}

// VendorReport is the wire shape of a catalog vendor
type VendorReport struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Category         types.Category      `json:"category"`
	Description      string              `json:"description,omitempty"`
	MachCompliant    bool                `json:"machCompliant"`
	Offerings        []string            `json:"offerings,omitempty"`
	Pros             []string            `json:"pros,omitempty"`
	Cons             []string            `json:"cons,omitempty"`
	IntegrationNotes string              `json:"integrationNotes,omitempty"`
	LogoURL          string              `json:"logoUrl,omitempty"`
	Website          string              `json:"website,omitempty"`
	Pricing          []output.TierReport `json:"pricing"`
	PricingModel     types.PricingModel  `json:"pricingModel"`
	PricingNotes     string              `json:"pricingNotes,omitempty"`
}

// ExtractRequest is the input to POST /architecture/extract
type ExtractRequest struct {
	Message string `json:"message" validate:"required"`
}

// ExtractResponse is the output of POST /architecture/extract
type ExtractResponse struct {
	Architecture types.Architecture `json:"architecture"`
	Vendors      []string           `json:"vendors"`
}

func newVendorReport(v *types.Vendor) VendorReport {
	r := VendorReport{
		ID:               v.ID,
		Name:             v.Name,
		Category:         v.Category,
		Description:      v.Description,
		MachCompliant:    v.MachCompliant,
		Offerings:        v.Offerings,
		Pros:             v.Pros,
		Cons:             v.Cons,
		IntegrationNotes: v.IntegrationNotes,
		LogoURL:          v.LogoURL,
		Website:          v.Website,
		Pricing:          make([]output.TierReport, 0, len(v.Pricing)),
		PricingModel:     v.PricingModel,
		PricingNotes:     v.PricingNotes,
	}
	for _, t := range v.Pricing {
		r.Pricing = append(r.Pricing, output.NewTierReport(t))
	}
	return r
}

func groupVendorReports(groups map[types.Category][]*types.Vendor) map[types.Category][]VendorReport {
	reports := make(map[types.Category][]VendorReport, len(groups))
	for category, vendors := range groups {
		reports[category] = newVendorReports(vendors)
	}
	return reports
}

func newVendorReports(vendors []*types.Vendor) []VendorReport {
	reports := make([]VendorReport, 0, len(vendors))
	for _, v := range vendors {
		reports = append(reports, newVendorReport(v))
	}
	return reports
}
