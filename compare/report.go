package compare

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspbench/tsp"
)

// ErrUnknownFormat is returned by Report.Write for a format other than
// text, json or yaml.
var ErrUnknownFormat = errors.New("compare: unknown report format")

// Report is the outcome of one harness run.
type Report struct {
	Cities      int
	MaxDistance int
	Seed        int64
	ExactLimit  int
	Outcomes    []Outcome
}

func newReport(cfg Config) Report {
	return Report{
		Cities:      cfg.Cities,
		MaxDistance: cfg.MaxDistance,
		Seed:        cfg.Seed,
		ExactLimit:  cfg.ExactLimit,
	}
}

// Outcome returns the non-skipped entry for algo.
func (r Report) Outcome(algo tsp.Algorithm) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Algorithm == algo && !o.Skipped {
			return o, true
		}
	}

	return Outcome{}, false
}

// Summary holds percentages; a nil field means an input was unavailable.
type Summary struct {
	// GreedyGapPct is (greedy − optimum) / optimum · 100.
	GreedyGapPct *float64 `json:"greedy_gap_pct,omitempty" yaml:"greedy_gap_pct,omitempty"`
	// TwoOptGapPct is (two-opt − optimum) / optimum · 100.
	TwoOptGapPct *float64 `json:"two_opt_gap_pct,omitempty" yaml:"two_opt_gap_pct,omitempty"`
	// TwoOptGainPct is (greedy − two-opt) / greedy · 100.
	TwoOptGainPct *float64 `json:"two_opt_gain_pct,omitempty" yaml:"two_opt_gain_pct,omitempty"`
}

// Summary compares the outcomes present in r.
func (r Report) Summary() Summary {
	var s Summary
	exact, okExact := r.Outcome(tsp.ExactBacktracking)
	greedy, okGreedy := r.Outcome(tsp.GreedyNearestNeighbor)
	two, okTwo := r.Outcome(tsp.GreedyTwoOpt)

	if okExact && okGreedy {
		s.GreedyGapPct = ptr(relDiff(greedy.Result.Cost, exact.Result.Cost))
	}
	if okExact && okTwo {
		s.TwoOptGapPct = ptr(relDiff(two.Result.Cost, exact.Result.Cost))
	}
	if okGreedy && okTwo {
		s.TwoOptGainPct = ptr(relGain(two.Result.Cost, greedy.Result.Cost))
	}

	return s
}

// relDiff is (v − base) / base · 100, and 0 for a zero base.
func relDiff(v, base float64) float64 {
	if base == 0 {
		return 0
	}

	return (v - base) / base * 100
}

// relGain is (base − v) / base · 100, and 0 for a zero base.
func relGain(v, base float64) float64 {
	if base == 0 {
		return 0
	}

	return (base - v) / base * 100
}

func ptr(x float64) *float64 { return &x }

// Write renders r in the given format.
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatText:
		return r.writeText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r.document()); err != nil {
			return fmt.Errorf("Report.Write: json: %w", err)
		}

		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.document()); err != nil {
			return fmt.Errorf("Report.Write: yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("Report.Write: yaml: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("Report.Write(%q): %w", format, ErrUnknownFormat)
	}
}

// Document is the serialised form of a Report.
type Document struct {
	Instance InstanceDoc `json:"instance" yaml:"instance"`
	Solvers  []SolverDoc `json:"solvers" yaml:"solvers"`
	Summary  Summary     `json:"summary" yaml:"summary"`
}

// InstanceDoc describes the generated instance.
type InstanceDoc struct {
	Cities      int   `json:"cities" yaml:"cities"`
	MaxDistance int   `json:"max_distance" yaml:"max_distance"`
	Seed        int64 `json:"seed" yaml:"seed"`
	ExactLimit  int   `json:"exact_limit" yaml:"exact_limit"`
}

// SolverDoc is one solver entry.
type SolverDoc struct {
	Solver         string  `json:"solver" yaml:"solver"`
	Skipped        bool    `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Reason         string  `json:"reason,omitempty" yaml:"reason,omitempty"`
	Tour           []int   `json:"tour,omitempty" yaml:"tour,omitempty,flow"`
	Cost           float64 `json:"cost" yaml:"cost"`
	ElapsedSeconds float64 `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Expanded       int64   `json:"expanded" yaml:"expanded"`
	Passes         int     `json:"passes,omitempty" yaml:"passes,omitempty"`
	Swaps          int     `json:"swaps,omitempty" yaml:"swaps,omitempty"`
}

func (r Report) document() Document {
	doc := Document{
		Instance: InstanceDoc{
			Cities:      r.Cities,
			MaxDistance: r.MaxDistance,
			Seed:        r.Seed,
			ExactLimit:  r.ExactLimit,
		},
		Solvers: make([]SolverDoc, 0, len(r.Outcomes)),
		Summary: r.Summary(),
	}
	for _, o := range r.Outcomes {
		doc.Solvers = append(doc.Solvers, SolverDoc{
			Solver:         o.Algorithm.String(),
			Skipped:        o.Skipped,
			Reason:         o.Reason,
			Tour:           o.Result.Tour,
			Cost:           o.Result.Cost,
			ElapsedSeconds: o.Result.Elapsed.Seconds(),
			Expanded:       o.Result.Expanded,
			Passes:         o.Result.Passes,
			Swaps:          o.Result.Swaps,
		})
	}

	return doc
}

// title is the heading of a solver section in the text report.
func title(algo tsp.Algorithm) string {
	switch algo {
	case tsp.ExactBacktracking:
		return "Backtracking"
	case tsp.GreedyNearestNeighbor:
		return "Greedy"
	case tsp.GreedyTwoOpt:
		return "Greedy + 2-opt"
	default:
		return algo.String()
	}
}

func (r Report) writeText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Comparing for N = %d (max distance %d, seed %d) ---\n",
		r.Cities, r.MaxDistance, r.Seed)

	for _, o := range r.Outcomes {
		fmt.Fprintf(&b, "\n%s:\n", title(o.Algorithm))
		if o.Skipped {
			fmt.Fprintf(&b, "  Skipped: %s\n", o.Reason)
			continue
		}
		res := o.Result
		fmt.Fprintf(&b, "  Route: %s\n", tsp.TourString(res.Tour))
		fmt.Fprintf(&b, "  Cost: %s\n", humanize.Ftoa(res.Cost))
		fmt.Fprintf(&b, "  Time: %.4f s (%s)\n", res.Elapsed.Seconds(), res.Elapsed)
		fmt.Fprintf(&b, "  Expanded: %s\n", humanize.Comma(res.Expanded))
		if o.Algorithm == tsp.GreedyTwoOpt {
			fmt.Fprintf(&b, "  Passes: %d, swaps: %d\n", res.Passes, res.Swaps)
		}
	}

	s := r.Summary()
	if s.GreedyGapPct != nil || s.TwoOptGainPct != nil {
		b.WriteString("\nSummary:\n")
		if s.GreedyGapPct != nil {
			fmt.Fprintf(&b, "  Greedy gap over optimum: %.2f%%\n", *s.GreedyGapPct)
		}
		if s.TwoOptGapPct != nil {
			fmt.Fprintf(&b, "  2-opt gap over optimum: %.2f%%\n", *s.TwoOptGapPct)
		}
		if s.TwoOptGainPct != nil {
			fmt.Fprintf(&b, "  2-opt gain over greedy: %.2f%%\n", *s.TwoOptGainPct)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("Report.Write: text: %w", err)
	}

	return nil
}
