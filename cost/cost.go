package cost

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mazeroute/grid"
)

// Sentinel errors for model construction.
var (
	// ErrNegativePenalty indicates that a bend or via penalty is below zero.
	ErrNegativePenalty = errors.New("cost: penalties must be non-negative")
	// ErrPenaltyTooLarge indicates a penalty above MaxPenalty.
	ErrPenaltyTooLarge = errors.New("cost: penalty too large")
)

const (
	// StepBase is the cost of a single same-layer step without a bend.
	StepBase int64 = 1

	// MaxPenalty bounds each penalty so that a path over any grid of up to
	// grid.MaxCells cells, in any direction state, stays below math.MaxInt64.
	MaxPenalty int64 = 1 << 30
)

// Model is the single parameterized cost model shared by every router pass.
// It is a small immutable value; copy it freely.
type Model struct {
	BendPenalty int64 // extra cost when a same-layer step changes direction
	ViaPenalty  int64 // cost of any layer change
}

// New returns a Model with the given penalties, rejecting negative values
// and values above MaxPenalty.
func New(bendPenalty, viaPenalty int64) (Model, error) {
	if bendPenalty < 0 || viaPenalty < 0 {
		return Model{}, fmt.Errorf("%w: bend=%d via=%d", ErrNegativePenalty, bendPenalty, viaPenalty)
	}
	if bendPenalty > MaxPenalty || viaPenalty > MaxPenalty {
		return Model{}, fmt.Errorf("%w: bend=%d via=%d (max %d)", ErrPenaltyTooLarge, bendPenalty, viaPenalty, MaxPenalty)
	}

	return Model{BendPenalty: bendPenalty, ViaPenalty: viaPenalty}, nil
}

// StepCost prices a same-layer step in direction next after a previous
// same-layer step in direction prev (grid.NoDirection if there was none).
func (m Model) StepCost(prev, next grid.Direction) int64 {
	if prev == grid.NoDirection || prev == next {
		return StepBase
	}

	return Add(StepBase, m.BendPenalty)
}

// ViaCost prices a layer change.
func (m Model) ViaCost() int64 { return m.ViaPenalty }

// PathCost re-prices an existing path move by move. Bend memory survives vias,
// matching the search. It is used to audit routed wiring; it does not check
// that consecutive cells are adjacent.
func (m Model) PathCost(path []grid.Cell) int64 {
	var total int64
	last := grid.NoDirection
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if a.Layer != b.Layer {
			total = Add(total, m.ViaCost())
			continue
		}
		d := directionOf(b.X-a.X, b.Y-a.Y)
		total = Add(total, m.StepCost(last, d))
		last = d
	}

	return total
}

// Add returns a+b for non-negative costs, saturating at math.MaxInt64 instead
// of wrapping. A Model built as a literal can bypass New's bounds; Add keeps
// its prices non-negative and ordered all the same.
func Add(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}

	return a + b
}

// directionOf maps a unit (dx, dy) to its Direction.
func directionOf(dx, dy int) grid.Direction {
	switch {
	case dx > 0:
		return grid.East
	case dx < 0:
		return grid.West
	case dy > 0:
		return grid.South
	case dy < 0:
		return grid.North
	default:
		return grid.NoDirection
	}
}
