package compare

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/tspbench/tsp"
)

const (
	metricsNamespace = "tspbench"
	solverSubsystem  = "solver"
	labelSolver      = "solver"
)

// Recorder holds the harness metrics on a private registry, so several
// recorders can live in one process (tests, repeated runs).
type Recorder struct {
	reg *prometheus.Registry

	// RunsTotal counts finished solver calls. Labels: solver.
	RunsTotal *prometheus.CounterVec
	// SkippedTotal counts solver calls not attempted. Labels: solver.
	SkippedTotal *prometheus.CounterVec
	// ExpandedTotal accumulates Result.Expanded. Labels: solver.
	ExpandedTotal *prometheus.CounterVec
	// DurationSeconds observes Result.Elapsed. Labels: solver.
	DurationSeconds *prometheus.HistogramVec
	// RouteCost is the cost of the latest route per solver. Labels: solver.
	RouteCost *prometheus.GaugeVec
}

// NewRecorder creates and registers all metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "runs_total",
			Help:      "Finished solver calls by solver.",
		}, []string{labelSolver}),
		SkippedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "skipped_total",
			Help:      "Solver calls skipped because the instance exceeds the exact limit.",
		}, []string{labelSolver}),
		ExpandedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "expanded_total",
			Help:      "Search states expanded by solver.",
		}, []string{labelSolver}),
		DurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "duration_seconds",
			Help:      "Solver wall time in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12), // 1µs to ~4s
		}, []string{labelSolver}),
		RouteCost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "route_cost",
			Help:      "Cost of the latest route by solver.",
		}, []string{labelSolver}),
	}
	r.reg.MustRegister(r.RunsTotal, r.SkippedTotal, r.ExpandedTotal, r.DurationSeconds, r.RouteCost)

	return r
}

// Observe records one finished solver call.
func (r *Recorder) Observe(algo tsp.Algorithm, res tsp.Result) {
	name := algo.String()
	r.RunsTotal.WithLabelValues(name).Inc()
	r.ExpandedTotal.WithLabelValues(name).Add(float64(res.Expanded))
	r.DurationSeconds.WithLabelValues(name).Observe(res.Elapsed.Seconds())
	r.RouteCost.WithLabelValues(name).Set(res.Cost)
}

// Skip records a solver call that was not attempted.
func (r *Recorder) Skip(algo tsp.Algorithm) {
	r.SkippedTotal.WithLabelValues(algo.String()).Inc()
}

// Gatherer exposes the private registry.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

// WriteText dumps every metric family in the Prometheus text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	mfs, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("Recorder.WriteText: gather: %w", err)
	}
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("Recorder.WriteText: %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
