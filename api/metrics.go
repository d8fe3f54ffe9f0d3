package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mach_cost"

var (
	// httpRequestsTotal counts requests by method, route and status
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, path, and status.",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration is request latency by route
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2.5, 10),
		},
		[]string{"method", "path"},
	)

	// estimatesTotal counts estimates by business size
	estimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimates_total",
			Help:      "Total number of architecture estimates by business size.",
		},
		[]string{"size"},
	)

	// unresolvedVendorsTotal counts architecture vendors missing from the catalog
	unresolvedVendorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unresolved_vendors_total",
			Help:      "Total number of requested vendors not found in the catalog.",
		},
	)

	// estimateMonthlyUSD is the distribution of estimated monthly totals
	estimateMonthlyUSD = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "estimate_monthly_usd",
			Help:      "Estimated monthly architecture cost in USD.",
			Buckets:   prometheus.ExponentialBuckets(100, 4, 8),
		},
	)
)
