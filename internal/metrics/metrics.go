package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skyways_flight_searches_total",
		Help: "Number of flight searches performed",
	})

	BookingsConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skyways_bookings_confirmed_total",
		Help: "Number of flight bookings paid and confirmed",
	})

	PaymentDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "skyways_payment_duration_seconds",
		Help:    "Wall time spent processing payments",
		Buckets: prometheus.DefBuckets,
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skyways_http_requests_total",
		Help: "HTTP requests by method, path and status",
	}, []string{"method", "path", "status"})
)

// Handler exposes the default registry for the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
