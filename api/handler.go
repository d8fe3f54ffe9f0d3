// Package api - HTTP handlers for cost estimation
// Handlers wrap the engine and contain NO estimation logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"mach-cost/core/architecture"
	"mach-cost/core/engine"
	"mach-cost/core/output"
	"mach-cost/internal/validation"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EstimateRequest
	if !s.decode(w, r, &req) {
		return
	}

	// Execute engine (NO COST LOGIC HERE)
	result, err := s.engine.Estimate(r.Context(), engine.EstimateRequest{
		Architecture: req.Architecture,
		Metrics:      req.Metrics,
	})
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	estimatesTotal.WithLabelValues(string(result.Metrics.Size)).Inc()
	unresolvedVendorsTotal.Add(float64(len(result.Cost.Unresolved)))
	estimateMonthlyUSD.Observe(result.Cost.TotalMonthly.InexactFloat64())

	if len(result.Cost.Unresolved) > 0 {
		s.logger.Info("vendors not in catalog",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Strings("vendors", result.Cost.Unresolved))
	}

	s.writeJSON(w, &EstimateResponse{
		RequestID:    RequestIDFromContext(r.Context()),
		Architecture: result.Architecture,
		Metrics:      output.NewMetricsReport(result.Metrics),
		Cost:         output.NewReport(result.Cost),
		Metadata: &ResponseMetadata{
			InputHash:      result.Metadata.InputHash,
			EngineVersion:  result.Metadata.Version,
			CatalogVendors: result.Metadata.CatalogVendors,
			DurationMs:     time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// handleTier handles POST /tier
func (s *Server) handleTier(w http.ResponseWriter, r *http.Request) {
	var req TierRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Vendor == "" {
		s.writeError(w, "VALIDATION_ERROR", "vendor is required", http.StatusBadRequest)
		return
	}

	vendor, sel, err := s.engine.SelectTier(req.Vendor, req.Metrics)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	s.writeJSON(w, &TierResponse{
		Vendor:   vendor.Name,
		Category: vendor.Category,
		Size:     string(req.Metrics.WithInferredSize().Size),
		Tier:     output.NewTierReport(sel.Tier),
		Reason:   sel.Reason,
	}, http.StatusOK)
}

// handleVendors handles GET /vendors
func (s *Server) handleVendors(w http.ResponseWriter, r *http.Request) {
	cat := s.engine.Catalog()

	stats := cat.Stats()
	s.writeJSON(w, &VendorsResponse{
		All:                groupVendorReports(cat.ByCategory(false)),
		MachCompliant:      groupVendorReports(cat.ByCategory(true)),
		Categories:         cat.Categories(),
		TotalVendors:       stats.Total,
		MachCompliantCount: stats.MachCompliant,
	}, http.StatusOK)
}

// handleFilterVendors handles POST /vendors/filter
func (s *Server) handleFilterVendors(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if !s.decode(w, r, &req) {
		return
	}

	machOnly := true
	if req.MachOnly != nil {
		machOnly = *req.MachOnly
	}

	vendors := newVendorReports(s.engine.Catalog().Filter(req.Category, machOnly))
	s.writeJSON(w, &FilterResponse{Data: vendors, Count: len(vendors)}, http.StatusOK)
}

// handleExtract handles POST /architecture/extract
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := validation.Struct(req); err != nil {
		s.writeEngineError(w, err)
		return
	}

	arch, err := architecture.Extract(req.Message)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	s.writeJSON(w, &ExtractResponse{
		Architecture: *arch,
		Vendors:      arch.VendorNames(),
	}, http.StatusOK)
}
