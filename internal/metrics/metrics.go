// Package metrics регистрирует Prometheus метрики сервиса.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ContractsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contracts_created_total",
			Help: "Contracts generated from bookings",
		},
	)

	ContractsSigned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contracts_signed_total",
			Help: "Contract signatures by role; role=ignored for unknown roles",
		},
		[]string{"role"},
	)

	InterestsSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "interests_saved_total",
			Help: "Successful interest replacements",
		},
	)

	RecommendationsServed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendations_served_count",
			Help:    "Number of creatives returned per recommendation request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)

	ChatMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_messages_sent_total",
			Help: "Chat messages stored",
		},
	)
)

// RecordHTTPRequest учитывает один обработанный запрос.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
