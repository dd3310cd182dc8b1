package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HoodCalls counts Hood.de API calls by function and outcome kind.
	HoodCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hood_api_calls_total",
		Help: "Hood.de API calls by function and outcome",
	}, []string{"function", "outcome"})

	// HoodCallDuration observes the wall time of Hood.de API calls.
	HoodCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hood_api_call_duration_seconds",
		Help:    "Duration of Hood.de API calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"function"})

	// OutboundRequests counts raw HTTP round trips by method and status code.
	OutboundRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "outbound_http_requests_total",
		Help: "Outbound HTTP round trips",
	}, []string{"method", "code"})

	// SyncRuns counts finalized order sync runs by status.
	SyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_sync_runs_total",
		Help: "Order sync runs by final status",
	}, []string{"status"})

	// SyncedOrders counts orders processed by reconciliation result.
	SyncedOrders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_sync_orders_total",
		Help: "Orders processed by sync, by result",
	}, []string{"result"})

	// Uploads counts listing upload attempts by status.
	Uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "listing_uploads_total",
		Help: "Listing upload attempts by status",
	}, []string{"status"})
)

// Handler exposes the default registry on a Fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
