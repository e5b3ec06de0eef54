package metrics

import (
	"net/http"
	"time"

	"domain-checker/core/reconcile"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for probes and reconciliation runs.
// It implements probe.Metrics.
type Metrics struct {
	ChecksTotal   *prometheus.CounterVec
	CheckDuration prometheus.Histogram
	RunsTotal     *prometheus.CounterVec
	CellsResolved prometheus.Counter
	CellsFailed   prometheus.Counter
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_checker_probe_checks_total",
			Help: "Total number of availability checks by outcome",
		}, []string{"outcome"}),
		CheckDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "domain_checker_probe_check_duration_seconds",
			Help:    "Latency of availability checks",
			Buckets: prometheus.DefBuckets,
		}),
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_checker_reconcile_runs_total",
			Help: "Total number of reconciliation runs by result",
		}, []string{"result"}),
		CellsResolved: factory.NewCounter(prometheus.CounterOpts{
			Name: "domain_checker_cells_resolved_total",
			Help: "Total number of table cells that received a status",
		}),
		CellsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "domain_checker_cells_failed_total",
			Help: "Total number of table cells left blank because the probe failed",
		}),
	}
}

// ObserveCheck implements probe.Metrics.
func (m *Metrics) ObserveCheck(outcome string, elapsed time.Duration) {
	m.ChecksTotal.WithLabelValues(outcome).Inc()
	m.CheckDuration.Observe(elapsed.Seconds())
}

// ObserveRun records the result of one reconciliation run.
func (m *Metrics) ObserveRun(summary reconcile.Summary, err error) {
	result := "ok"
	if err != nil {
		result = "failed"
	}
	m.RunsTotal.WithLabelValues(result).Inc()
	m.CellsResolved.Add(float64(summary.Resolved()))
	m.CellsFailed.Add(float64(summary.Errors))
}

// Handler serves the collectors of g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
