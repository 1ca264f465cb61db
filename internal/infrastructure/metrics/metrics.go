// Package metrics instrumenta los repositorios con Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados de una operación.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics contadores e histogramas de operaciones de repositorio.
type Metrics struct {
	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// New registra las métricas en reg. reg nil usa el registry por defecto.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_repository_operations_total",
			Help: "Total de operaciones de repositorio por entidad, operación y resultado",
		}, []string{"entity", "operation", "outcome"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catalog_repository_operation_duration_seconds",
			Help:    "Duración de las operaciones de repositorio",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"entity", "operation"}),
	}
}

// Observe registra una operación. Llamar con time.Now() tomado al inicio. Nil-safe.
func (m *Metrics) Observe(entity, operation, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(entity, operation, outcome).Inc()
	m.Duration.WithLabelValues(entity, operation).Observe(time.Since(start).Seconds())
}
