package metrics

import (
	"net/http"
	"propbook/config"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationCancel = "cancel"

	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
)

// Metrics holds all prometheus metrics of the service.
type Metrics struct {
	registry *prometheus.Registry

	BookingOperations *prometheus.CounterVec
	ActiveBookings    prometheus.Gauge
	Validations       *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
}

// New registers the service metrics on a dedicated registry.
func New(cfg *config.Config) *Metrics {
	namespace := strings.ReplaceAll(cfg.App.Name, "-", "_")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		BookingOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_operations_total",
			Help:      "The total number of booking operations by operation and outcome",
		}, []string{"operation", "outcome"}),
		ActiveBookings: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_bookings",
			Help:      "The number of bookings currently held in memory",
		}),
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_validations_total",
			Help:      "The total number of field validations by field and result",
		}, []string{"field", "valid"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// ObserveBooking records the outcome of a booking operation.
func (m *Metrics) ObserveBooking(operation string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeRejected
	}

	m.BookingOperations.WithLabelValues(operation, outcome).Inc()
}

// ObserveValidation records the result of a field validation.
func (m *Metrics) ObserveValidation(field string, valid bool) {
	result := "false"
	if valid {
		result = "true"
	}

	m.Validations.WithLabelValues(field, result).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
