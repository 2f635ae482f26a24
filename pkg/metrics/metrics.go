// Package metrics declares the Prometheus collectors shared across the
// application. Collectors are registered on the default registry and exposed
// through the /metrics endpoint of the API server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// HTTPRequestDuration observes request latency per method and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: DefaultBuckets,
	}, []string{"method", "status"})

	// ConfirmationEmails counts confirmation email delivery attempts by outcome
	// (delivered, rejected, unavailable).
	ConfirmationEmails = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "confirmation_emails_total",
		Help: "Confirmation email delivery attempts by outcome.",
	}, []string{"outcome"})

	// NewsletterDeliveries counts per-recipient newsletter sends by outcome
	// (delivered, failed).
	NewsletterDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsletter_deliveries_total",
		Help: "Per-recipient newsletter delivery attempts by outcome.",
	}, []string{"outcome"})
)
