package cost_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeroute/cost"
	"github.com/katalvlaran/mazeroute/grid"
)

func TestNew_RejectsNegative(t *testing.T) {
	_, err := cost.New(-1, 0)
	require.ErrorIs(t, err, cost.ErrNegativePenalty)
	_, err = cost.New(0, -3)
	require.ErrorIs(t, err, cost.ErrNegativePenalty)

	m, err := cost.New(0, 0)
	require.NoError(t, err)
	assert.Equal(t, cost.Model{}, m)
}

func TestNew_RejectsTooLarge(t *testing.T) {
	_, err := cost.New(math.MaxInt64, 0)
	require.ErrorIs(t, err, cost.ErrPenaltyTooLarge)
	_, err = cost.New(0, cost.MaxPenalty+1)
	require.ErrorIs(t, err, cost.ErrPenaltyTooLarge)

	m, err := cost.New(cost.MaxPenalty, cost.MaxPenalty)
	require.NoError(t, err)
	assert.Equal(t, 1+cost.MaxPenalty, m.StepCost(grid.East, grid.South))
}

// A literal Model skips New; its prices saturate instead of wrapping negative.
func TestStepCost_Saturates(t *testing.T) {
	m := cost.Model{BendPenalty: math.MaxInt64, ViaPenalty: math.MaxInt64}
	assert.Equal(t, int64(math.MaxInt64), m.StepCost(grid.East, grid.South))
	assert.Greater(t, m.StepCost(grid.East, grid.South), m.StepCost(grid.East, grid.East))

	path := []grid.Cell{{Layer: 0, X: 0, Y: 0}, {Layer: 1, X: 0, Y: 0}, {Layer: 1, X: 1, Y: 0}, {Layer: 0, X: 1, Y: 0}}
	assert.Equal(t, int64(math.MaxInt64), m.PathCost(path))
}

func TestAdd(t *testing.T) {
	assert.Equal(t, int64(5), cost.Add(2, 3))
	assert.Equal(t, int64(math.MaxInt64), cost.Add(math.MaxInt64-1, 2))
	assert.Equal(t, int64(math.MaxInt64), cost.Add(math.MaxInt64, math.MaxInt64))
}

func TestStepCost(t *testing.T) {
	m, err := cost.New(5, 7)
	require.NoError(t, err)

	cases := []struct {
		name       string
		prev, next grid.Direction
		want       int64
	}{
		{"FirstMove", grid.NoDirection, grid.East, 1},
		{"Straight", grid.North, grid.North, 1},
		{"Turn", grid.East, grid.South, 6},
		{"Reverse", grid.East, grid.West, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.StepCost(tc.prev, tc.next))
		})
	}
	assert.Equal(t, int64(7), m.ViaCost())
}

// TestStepCost_BendNeverCheaper holds for every penalty, including zero.
func TestStepCost_BendNeverCheaper(t *testing.T) {
	for _, bend := range []int64{0, 1, 10} {
		m := cost.Model{BendPenalty: bend}
		for _, a := range grid.Directions {
			for _, b := range grid.Directions {
				assert.GreaterOrEqual(t, m.StepCost(a, b), m.StepCost(a, a))
			}
		}
	}
}

func TestPathCost(t *testing.T) {
	m := cost.Model{BendPenalty: 2, ViaPenalty: 3}
	path := []grid.Cell{
		{Layer: 0, X: 0, Y: 0},
		{Layer: 0, X: 1, Y: 0}, // E: 1
		{Layer: 1, X: 1, Y: 0}, // via: 3
		{Layer: 1, X: 2, Y: 0}, // E after via, no bend: 1
		{Layer: 1, X: 2, Y: 1}, // S, bend: 3
	}
	assert.Equal(t, int64(8), m.PathCost(path))
	assert.Zero(t, m.PathCost(path[:1]))
	assert.Zero(t, m.PathCost(nil))
}
