package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты загрузки источника для метрики source_fetches_total
const (
	FetchResultSuccess  = "success"
	FetchResultFallback = "fallback"
)

// Metrics Prometheus-коллекторы сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	sourceFetchesTotal  *prometheus.CounterVec
}

// New создает и регистрирует коллекторы. serviceName добавляется ко всем
// метрикам константной меткой service.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "path"},
		),
		sourceFetchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "source_fetches_total",
				Help:        "Booking source fetch attempts by result",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.sourceFetchesTotal,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncSourceFetch фиксирует попытку загрузки данных из источника
func (m *Metrics) IncSourceFetch(result string) {
	m.sourceFetchesTotal.WithLabelValues(result).Inc()
}
