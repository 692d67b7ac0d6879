package observe

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// Metrics holds the collectors updated by Observed schemas.
type Metrics struct {
	validations *prometheus.CounterVec
	violations  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg. It panics if they are
// already registered there.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rulekit_validations_total",
			Help: "The total number of schema validations",
		}, []string{"schema", "result"}),
		violations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rulekit_violations_total",
			Help: "The total number of violations reported, by top-level field and code",
		}, []string{"schema", "field", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rulekit_validation_duration_seconds",
			Help:    "The time it takes to validate a record",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"schema", "result"}),
	}
}

var defaultMetrics = sync.OnceValue(func() *Metrics { //nolint:gochecknoglobals
	return NewMetrics(prometheus.DefaultRegisterer)
})

// DefaultMetrics returns the collectors registered with the default
// Prometheus registerer.
func DefaultMetrics() *Metrics {
	return defaultMetrics()
}

// init pre-creates the result series of schema so dashboards see zeroes
// before the first validation.
func (m *Metrics) init(schema string) {
	for _, result := range []string{ResultValid, ResultInvalid, ResultError} {
		m.validations.WithLabelValues(schema, result).Add(0)
	}
}
