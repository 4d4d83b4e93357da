package restapi

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payroll",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Total number of payroll REST API calls broken down by resource, method and status.",
	}, []string{"resource", "method", "status"})

	upstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payroll",
		Subsystem: "upstream",
		Name:      "latency_seconds",
		Help:      "Latency distribution for payroll REST API calls.",
		Buckets: []float64{
			0.005, 0.01, 0.025, 0.05,
			0.1, 0.25, 0.5, 1,
			2.5, 5, 10, 30,
		},
	}, []string{"resource", "method"})
)

// statusCode 0 means the call never produced a response
func recordUpstreamMetrics(resource, method string, statusCode int, latency time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	upstreamRequests.With(prometheus.Labels{
		"resource": resource,
		"method":   method,
		"status":   status,
	}).Inc()
	upstreamLatency.With(prometheus.Labels{
		"resource": resource,
		"method":   method,
	}).Observe(latency.Seconds())
}
