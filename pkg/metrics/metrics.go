package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса.
// Методы Record* безопасно вызывать на nil (метрики выключены).
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge

	AlignmentChecksTotal    *prometheus.CounterVec
	AvailabilityChecksTotal *prometheus.CounterVec
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном реестре (для тестов)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),

		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),

		AlignmentChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_alignment_checks_total",
			Help:        "Bi-week alignment checks by result",
			ConstLabels: constLabels,
		}, []string{"aligned"}),

		AvailabilityChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "asset_availability_checks_total",
			Help:        "Asset availability checks by result",
			ConstLabels: constLabels,
		}, []string{"available"}),
	}
}

// RecordHTTPRequest фиксирует выполненный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordDBQuery фиксирует длительность SQL запроса
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBOpenConnections.Set(float64(open))
	m.DBInUseConnections.Set(float64(inUse))
	m.DBIdleConnections.Set(float64(idle))
}

// RecordAlignmentCheck фиксирует результат проверки выравнивания
func (m *Metrics) RecordAlignmentCheck(aligned bool) {
	if m == nil {
		return
	}
	m.AlignmentChecksTotal.WithLabelValues(strconv.FormatBool(aligned)).Inc()
}

// RecordAvailabilityCheck фиксирует результат проверки доступности
func (m *Metrics) RecordAvailabilityCheck(available bool) {
	if m == nil {
		return
	}
	m.AvailabilityChecksTotal.WithLabelValues(strconv.FormatBool(available)).Inc()
}
