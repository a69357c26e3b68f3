package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbPoolOpenConnections *prometheus.GaugeVec
	dbPoolInUse           *prometheus.GaugeVec
	dbPoolIdle            *prometheus.GaugeVec
}

// New регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		dbQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"service", "operation", "status"},
		),
		dbQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "operation"},
		),
		dbPoolOpenConnections: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_open_connections",
				Help: "Number of open connections in the pool",
			},
			[]string{"service"},
		),
		dbPoolInUse: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_in_use_connections",
				Help: "Number of connections currently in use",
			},
			[]string{"service"},
		),
		dbPoolIdle: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_idle_connections",
				Help: "Number of idle connections in the pool",
			},
			[]string{"service"},
		),
	}
}

// ObserveHTTPRequest фиксирует выполненный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(
		m.serviceName, method, path, strconv.Itoa(status),
	).Inc()
	m.httpRequestDuration.WithLabelValues(
		m.serviceName, method, path,
	).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(m.serviceName, operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbPoolOpenConnections.WithLabelValues(m.serviceName).Set(float64(stats.OpenConnections))
	m.dbPoolInUse.WithLabelValues(m.serviceName).Set(float64(stats.InUse))
	m.dbPoolIdle.WithLabelValues(m.serviceName).Set(float64(stats.Idle))
}
