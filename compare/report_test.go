package compare_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspbench/compare"
	"github.com/katalvlaran/tspbench/tsp"
)

// fixedReport is hand-built so that timings are known.
func fixedReport() compare.Report {
	return compare.Report{
		Cities:      4,
		MaxDistance: 9,
		Seed:        3,
		ExactLimit:  11,
		Outcomes: []compare.Outcome{
			{Algorithm: tsp.ExactBacktracking, Result: tsp.Result{
				Tour: []int{0, 1, 3, 2, 0}, Cost: 13, Elapsed: 1500 * time.Microsecond, Expanded: 12345,
			}},
			{Algorithm: tsp.GreedyNearestNeighbor, Result: tsp.Result{
				Tour: []int{0, 2, 3, 1, 0}, Cost: 15, Elapsed: 2 * time.Microsecond, Expanded: 12,
			}},
			{Algorithm: tsp.GreedyTwoOpt, Result: tsp.Result{
				Tour: []int{0, 1, 3, 2, 0}, Cost: 13, Elapsed: 3 * time.Microsecond, Expanded: 6, Passes: 2, Swaps: 1,
			}},
		},
	}
}

func TestReport_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixedReport().Write(&buf, compare.FormatText))

	want := `--- Comparing for N = 4 (max distance 9, seed 3) ---

Backtracking:
  Route: 0 → 1 → 3 → 2 → 0
  Cost: 13
  Time: 0.0015 s (1.5ms)
  Expanded: 12,345

Greedy:
  Route: 0 → 2 → 3 → 1 → 0
  Cost: 15
  Time: 0.0000 s (2µs)
  Expanded: 12

Greedy + 2-opt:
  Route: 0 → 1 → 3 → 2 → 0
  Cost: 13
  Time: 0.0000 s (3µs)
  Expanded: 6
  Passes: 2, swaps: 1

Summary:
  Greedy gap over optimum: 15.38%
  2-opt gap over optimum: 0.00%
  2-opt gain over greedy: 13.33%
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("text report mismatch (-want +got):\n%s", diff)
	}
}

func TestReport_TextSkipped(t *testing.T) {
	rep := fixedReport()
	rep.Outcomes[0] = compare.Outcome{
		Algorithm: tsp.ExactBacktracking,
		Skipped:   true,
		Reason:    "14 cities > exact limit 11",
	}

	var buf bytes.Buffer
	require.NoError(t, rep.Write(&buf, compare.FormatText))
	out := buf.String()

	require.Contains(t, out, "Backtracking:\n  Skipped: 14 cities > exact limit 11\n")
	require.NotContains(t, out, "Greedy gap over optimum")
	require.Contains(t, out, "2-opt gain over greedy: 13.33%")
}

func TestReport_JSON(t *testing.T) {
	doc := decodeJSON(t, fixedReport())

	require.Equal(t, compare.InstanceDoc{Cities: 4, MaxDistance: 9, Seed: 3, ExactLimit: 11}, doc.Instance)
	require.Len(t, doc.Solvers, 3)
	require.Equal(t, "backtracking", doc.Solvers[0].Solver)
	require.Equal(t, []int{0, 1, 3, 2, 0}, doc.Solvers[0].Tour)
	require.Equal(t, 0.0015, doc.Solvers[0].ElapsedSeconds)
	require.Equal(t, int64(12345), doc.Solvers[0].Expanded)
	require.Equal(t, 2, doc.Solvers[2].Passes)

	require.NotNil(t, doc.Summary.GreedyGapPct)
	require.InDelta(t, 15.3846, *doc.Summary.GreedyGapPct, 1e-3)
	require.InDelta(t, 13.3333, *doc.Summary.TwoOptGainPct, 1e-3)
}

// YAML and JSON carry the same document.
func TestReport_YAMLMatchesJSON(t *testing.T) {
	rep := fixedReport()

	var buf bytes.Buffer
	require.NoError(t, rep.Write(&buf, compare.FormatYAML))
	var fromYAML compare.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))

	if diff := cmp.Diff(decodeJSON(t, rep), fromYAML); diff != "" {
		t.Fatalf("yaml/json mismatch (-json +yaml):\n%s", diff)
	}
}

func TestReport_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := fixedReport().Write(&buf, "xml")
	require.ErrorIs(t, err, compare.ErrUnknownFormat)
	require.Zero(t, buf.Len())
}

func TestReport_SummaryZeroOptimum(t *testing.T) {
	zero := tsp.Result{Tour: []int{0, 0}}
	rep := compare.Report{Cities: 1, Outcomes: []compare.Outcome{
		{Algorithm: tsp.ExactBacktracking, Result: zero},
		{Algorithm: tsp.GreedyNearestNeighbor, Result: zero},
		{Algorithm: tsp.GreedyTwoOpt, Result: zero},
	}}

	s := rep.Summary()
	require.Equal(t, 0.0, *s.GreedyGapPct)
	require.Equal(t, 0.0, *s.TwoOptGapPct)
	require.Equal(t, 0.0, *s.TwoOptGainPct)
}
