package cms

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts validation outcomes. A nil *Metrics records nothing.
type Metrics struct {
	Validations  *prometheus.CounterVec
	CacheLookups *prometheus.CounterVec
}

// NewMetrics registers the service metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Validations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contentschema_validations_total",
			Help: "Documents validated against a content schema by schema and result",
		}, []string{"schema", "result"}), // result: "valid", "invalid"

		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contentschema_cache_lookups_total",
			Help: "Page cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss", "error"
	}
}

// ObserveValidation records one validation of a document against schema.
func (m *Metrics) ObserveValidation(schema string, valid bool) {
	if m == nil {
		return
	}
	result := "valid"
	if !valid {
		result = "invalid"
	}
	m.Validations.WithLabelValues(schema, result).Inc()
}

// ObserveCache records a cache lookup result.
func (m *Metrics) ObserveCache(result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(result).Inc()
	}
}
