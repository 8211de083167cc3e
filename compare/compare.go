package compare

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/tspbench/builder"
	"github.com/katalvlaran/tspbench/matrix"
	"github.com/katalvlaran/tspbench/tsp"
)

// Outcome is one solver's entry in a Report.
type Outcome struct {
	Algorithm tsp.Algorithm
	Result    tsp.Result
	// Skipped is set when the solver was not attempted; Reason says why.
	Skipped bool
	Reason  string
}

// Option customizes Run and Solve. Constructors panic on nil arguments.
type Option func(*runOptions)

type runOptions struct {
	log *zap.Logger
	rec *Recorder
}

func newRunOptions(opts ...Option) runOptions {
	ro := runOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&ro)
	}

	return ro
}

// WithLogger sets the logger for solver progress.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("compare: WithLogger(nil)")
	}

	return func(o *runOptions) { o.log = l }
}

// WithRecorder attaches metrics.
func WithRecorder(r *Recorder) Option {
	if r == nil {
		panic("compare: WithRecorder(nil)")
	}

	return func(o *runOptions) { o.rec = r }
}

// Run generates one instance from cfg and runs Backtracking (when the
// instance is within ExactLimit), NearestNeighbor, then TwoOpt on the
// greedy route. Outcomes appear in that order.
func Run(cfg Config, opts ...Option) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	ro := newRunOptions(opts...)

	dist, err := generate(cfg, ro.log)
	if err != nil {
		return Report{}, err
	}
	rep := newReport(cfg)

	if cfg.Cities <= cfg.ExactLimit {
		out, err := ro.solve(dist, tsp.ExactBacktracking, func() (tsp.Result, error) {
			return tsp.Backtracking(dist, exactOptions(cfg)...)
		})
		if err != nil {
			return Report{}, err
		}
		rep.Outcomes = append(rep.Outcomes, out)
	} else {
		reason := fmt.Sprintf("%d cities > exact limit %d", cfg.Cities, cfg.ExactLimit)
		ro.log.Debug("solver skipped",
			zap.String("solver", tsp.ExactBacktracking.String()),
			zap.String("reason", reason))
		if ro.rec != nil {
			ro.rec.Skip(tsp.ExactBacktracking)
		}
		rep.Outcomes = append(rep.Outcomes, Outcome{Algorithm: tsp.ExactBacktracking, Skipped: true, Reason: reason})
	}

	greedy, err := ro.solve(dist, tsp.GreedyNearestNeighbor, func() (tsp.Result, error) {
		return tsp.NearestNeighbor(dist)
	})
	if err != nil {
		return Report{}, err
	}
	rep.Outcomes = append(rep.Outcomes, greedy)

	refined, err := ro.solve(dist, tsp.GreedyTwoOpt, func() (tsp.Result, error) {
		return tsp.TwoOpt(dist, greedy.Result.Tour, twoOptOptions(cfg)...)
	})
	if err != nil {
		return Report{}, err
	}
	rep.Outcomes = append(rep.Outcomes, refined)

	return rep, nil
}

// Solve generates one instance from cfg and runs a single algorithm through
// tsp.Solve. ExactLimit does not apply; tsp.MaxExactCities still does.
func Solve(cfg Config, algo tsp.Algorithm, opts ...Option) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	ro := newRunOptions(opts...)

	dist, err := generate(cfg, ro.log)
	if err != nil {
		return Report{}, err
	}

	var solverOpts []tsp.Option
	switch algo {
	case tsp.ExactBacktracking:
		solverOpts = exactOptions(cfg)
	case tsp.GreedyTwoOpt:
		solverOpts = twoOptOptions(cfg)
	}

	out, err := ro.solve(dist, algo, func() (tsp.Result, error) {
		return tsp.Solve(dist, algo, solverOpts...)
	})
	if err != nil {
		return Report{}, err
	}
	rep := newReport(cfg)
	rep.Outcomes = append(rep.Outcomes, out)

	return rep, nil
}

// generate builds the instance described by cfg.
func generate(cfg Config, log *zap.Logger) (*matrix.Dense, error) {
	dist, err := builder.RandomComplete(cfg.Cities,
		builder.WithSeed(cfg.Seed),
		builder.WithMaxDistance(cfg.MaxDistance))
	if err != nil {
		return nil, fmt.Errorf("compare: generate: %w", err)
	}
	log.Debug("instance generated",
		zap.Int("cities", cfg.Cities),
		zap.Int("max_distance", cfg.MaxDistance),
		zap.Int64("seed", cfg.Seed))

	return dist, nil
}

// solve runs fn, logs and records the result.
func (ro runOptions) solve(dist matrix.Matrix, algo tsp.Algorithm, fn func() (tsp.Result, error)) (Outcome, error) {
	res, err := fn()
	if err != nil {
		ro.log.Error("solver failed", zap.String("solver", algo.String()), zap.Error(err))
		return Outcome{}, fmt.Errorf("compare: %s: %w", algo, err)
	}
	ro.log.Info("solver finished",
		zap.String("solver", algo.String()),
		zap.Int("cities", dist.Rows()),
		zap.Float64("cost", res.Cost),
		zap.Duration("elapsed", res.Elapsed),
		zap.Int64("expanded", res.Expanded))
	if ro.rec != nil {
		ro.rec.Observe(algo, res)
	}

	return Outcome{Algorithm: algo, Result: res}, nil
}

func exactOptions(cfg Config) []tsp.Option {
	if cfg.Bound {
		return []tsp.Option{tsp.WithLowerBound()}
	}

	return nil
}

func twoOptOptions(cfg Config) []tsp.Option {
	if cfg.MaxPasses > 0 {
		return []tsp.Option{tsp.WithMaxPasses(cfg.MaxPasses)}
	}

	return nil
}
