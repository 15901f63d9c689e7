package vote

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsSubsystem is the namespace component of metric names.
	MetricsSubsystem = "engine"
)

// Metrics counts engine operations. NopMetrics instances are unregistered so
// tests can instantiate keepers freely.
type Metrics struct {
	VotesCreated     prometheus.Counter
	BallotsCast      prometheus.Counter
	VotesExecuted    prometheus.Counter
	ProcedureChanges prometheus.Counter
}

func newMetrics(namespace string) *Metrics {
	return &Metrics{
		VotesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "votes_created_total",
			Help:      "Number of votes created.",
		}),
		BallotsCast: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "ballots_cast_total",
			Help:      "Number of ballots cast, re-votes included.",
		}),
		VotesExecuted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "votes_executed_total",
			Help:      "Number of votes executed.",
		}),
		ProcedureChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "procedure_changes_total",
			Help:      "Number of governance parameter changes.",
		}),
	}
}

// PrometheusMetrics registers the counters on the default registry. Call at
// most once per process.
func PrometheusMetrics(namespace string) *Metrics {
	m := newMetrics(namespace)
	prometheus.MustRegister(m.VotesCreated, m.BallotsCast, m.VotesExecuted, m.ProcedureChanges)
	return m
}

// NopMetrics returns unregistered counters.
func NopMetrics() *Metrics {
	return newMetrics("nop")
}
