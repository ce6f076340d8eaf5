package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CheckoutMetrics struct {
	Outcomes  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

// NewCheckoutMetrics registers and returns the checkout collectors. Call at
// most once per process.
func NewCheckoutMetrics() *CheckoutMetrics {
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "transactions_total",
		Help:      "Checkout transactions by outcome.",
	}, []string{"outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "checkout",
		Name:      "transaction_duration_ms",
		Help:      "Checkout transaction latency in milliseconds.",
		Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"outcome"})

	prometheus.MustRegister(outcomes, latency)
	return &CheckoutMetrics{Outcomes: outcomes, LatencyMS: latency}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
