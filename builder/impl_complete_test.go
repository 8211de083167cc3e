package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbench/builder"
	"github.com/katalvlaran/tspbench/matrix"
)

func TestRandomComplete_Invariants(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 17} {
		dist, err := builder.RandomComplete(n, builder.WithSeed(9), builder.WithMaxDistance(30))
		require.NoError(t, err)
		require.Equal(t, n, dist.Rows())
		require.Equal(t, n, dist.Cols())

		rows := dist.ToRows()
		for i := 0; i < n; i++ {
			require.Zero(t, rows[i][i], "diagonal (%d,%d)", i, i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				w := rows[i][j]
				require.Equal(t, w, rows[j][i], "symmetry (%d,%d)", i, j)
				require.GreaterOrEqual(t, w, 1.0)
				require.LessOrEqual(t, w, 30.0)
				require.Equal(t, math.Trunc(w), w, "weights are integers")
			}
		}
	}
}

func TestRandomComplete_DeterministicPerSeed(t *testing.T) {
	t.Parallel()

	a, err := builder.RandomComplete(12, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.RandomComplete(12, builder.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), b.ToRows())

	c, err := builder.RandomComplete(12, builder.WithSeed(43))
	require.NoError(t, err)
	require.NotEqual(t, a.ToRows(), c.ToRows())

	// No seed option means DefaultSeed.
	d, err := builder.RandomComplete(12)
	require.NoError(t, err)
	e, err := builder.RandomComplete(12, builder.WithSeed(builder.DefaultSeed))
	require.NoError(t, err)
	require.Equal(t, d.ToRows(), e.ToRows())
}

func TestRandomComplete_WithRandAdvancesSource(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(5))
	first, err := builder.RandomComplete(6, builder.WithRand(r))
	require.NoError(t, err)
	second, err := builder.RandomComplete(6, builder.WithRand(r))
	require.NoError(t, err)
	require.NotEqual(t, first.ToRows(), second.ToRows())
}

func TestRandomComplete_MaxDistanceOne(t *testing.T) {
	t.Parallel()

	dist, err := builder.RandomComplete(4, builder.WithMaxDistance(1))
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	}, dist.ToRows())
}

func TestRandomComplete_CustomWeightFn(t *testing.T) {
	t.Parallel()

	dist, err := builder.RandomComplete(3, builder.WithWeightFn(builder.ConstantWeightFn(2.5)),
		builder.WithMaxDistance(0)) // ignored with a custom generator
	require.NoError(t, err)
	w, err := dist.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 2.5, w)

	_, err = builder.RandomComplete(3, builder.WithWeightFn(func(*rand.Rand) float64 { return math.NaN() }))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestRandomComplete_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.RandomComplete(0)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	require.Contains(t, err.Error(), "RandomComplete")

	_, err = builder.RandomComplete(3, builder.WithMaxDistance(0))
	require.ErrorIs(t, err, builder.ErrBadMaxDistance)
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
}
