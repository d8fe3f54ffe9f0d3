// Package catalog - Catalog loading
// Catalog payloads arrive as JSON (the native shape), YAML or HCL files.
package catalog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"mach-cost/core/types"
	"mach-cost/internal/errors"
)

// Format is a catalog file format
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatFromPath picks a format from the file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".hcl":
		return FormatHCL
	default:
		return FormatJSON
	}
}

// LoadFile reads and parses a catalog file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeCatalog, err, "reading catalog %s", path)
	}
	return Parse(data, FormatFromPath(path), path)
}

// Parse decodes a catalog payload. filename is only used in diagnostics.
func Parse(data []byte, format Format, filename string) (*Catalog, error) {
	var (
		vendors []types.Vendor
		err     error
	)

	switch format {
	case FormatJSON:
		vendors, err = parseJSON(data)
	case FormatYAML:
		vendors, err = parseYAML(data)
	case FormatHCL:
		vendors, err = parseHCL(data, filename)
	default:
		return nil, errors.Newf(errors.TypeCatalog, "unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, err
	}

	return New(vendors), nil
}

// parseJSON accepts a bare vendor array or {"vendors": [...]}
func parseJSON(data []byte) ([]types.Vendor, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped struct {
			Vendors []types.Vendor `json:"vendors"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, errors.Parsing("invalid JSON catalog", err)
		}
		return wrapped.Vendors, nil
	}

	var vendors []types.Vendor
	if err := json.Unmarshal(trimmed, &vendors); err != nil {
		return nil, errors.Parsing("invalid JSON catalog", err)
	}
	return vendors, nil
}

// parseYAML converts the YAML document to JSON so that decimals and
// field names decode exactly as they do for native payloads
func parseYAML(data []byte) ([]types.Vendor, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Parsing("invalid YAML catalog", err)
	}

	asJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Parsing("YAML catalog is not representable as JSON", err)
	}
	return parseJSON(asJSON)
}

type hclFile struct {
	Vendors []hclVendor `hcl:"vendor,block"`
}

type hclVendor struct {
	Name             string    `hcl:"name,label"`
	ID               string    `hcl:"id,optional"`
	Category         string    `hcl:"category"`
	Description      string    `hcl:"description,optional"`
	MachCompliant    bool      `hcl:"mach_compliant,optional"`
	PricingModel     string    `hcl:"pricing_model,optional"`
	PricingNotes     string    `hcl:"pricing_notes,optional"`
	Website          string    `hcl:"website,optional"`
	IntegrationNotes string    `hcl:"integration_notes,optional"`
	Offerings        []string  `hcl:"offerings,optional"`
	Tiers            []hclTier `hcl:"tier,block"`
}

type hclTier struct {
	Name           string   `hcl:"name,label"`
	Description    string   `hcl:"description,optional"`
	MonthlyPrice   float64  `hcl:"monthly_price,optional"`
	AnnualPrice    float64  `hcl:"annual_price,optional"`
	Setup          float64  `hcl:"setup,optional"`
	TransactionFee float64  `hcl:"transaction_fee,optional"`
	OrderLimit     *int64   `hcl:"order_limit,optional"`
	UserLimit      *int64   `hcl:"user_limit,optional"`
	Features       []string `hcl:"features,optional"`
	TargetSizes    []string `hcl:"target_sizes,optional"`
}

// parseHCL decodes vendor blocks:
//
//	vendor "Algolia" {
//	  category      = "search"
//	  pricing_model = "usage"
//	  tier "Grow" {
//	    monthly_price = 0
//	    order_limit   = 10000
//	  }
//	}
func parseHCL(data []byte, filename string) ([]types.Vendor, error) {
	if filename == "" {
		filename = "catalog.hcl"
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid HCL catalog", diags)
	}

	var doc hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, errors.Parsing("invalid HCL catalog", diags)
	}

	vendors := make([]types.Vendor, 0, len(doc.Vendors))
	for _, hv := range doc.Vendors {
		v := types.Vendor{
			ID:               hv.ID,
			Name:             hv.Name,
			Category:         types.Category(hv.Category),
			Description:      hv.Description,
			MachCompliant:    hv.MachCompliant,
			PricingModel:     types.PricingModel(hv.PricingModel),
			PricingNotes:     hv.PricingNotes,
			Website:          hv.Website,
			IntegrationNotes: hv.IntegrationNotes,
			Offerings:        hv.Offerings,
			Pricing:          []types.PricingTier{},
		}
		if v.PricingModel == "" {
			v.PricingModel = types.PricingFixed
		}

		for _, ht := range hv.Tiers {
			t := types.PricingTier{
				Name:           ht.Name,
				Description:    ht.Description,
				MonthlyPrice:   decimal.NewFromFloat(ht.MonthlyPrice),
				AnnualPrice:    decimal.NewFromFloat(ht.AnnualPrice),
				Setup:          decimal.NewFromFloat(ht.Setup),
				TransactionFee: decimal.NewFromFloat(ht.TransactionFee),
				Features:       ht.Features,
			}
			if ht.OrderLimit != nil || ht.UserLimit != nil {
				t.Limits = &types.Limits{Orders: ht.OrderLimit, Users: ht.UserLimit}
			}
			for _, s := range ht.TargetSizes {
				t.TargetSizes = append(t.TargetSizes, types.BusinessSize(s))
			}
			v.Pricing = append(v.Pricing, t)
		}

		vendors = append(vendors, v)
	}

	return vendors, nil
}
