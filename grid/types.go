package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrBadDimensions indicates a non-positive width, height or layer count,
	// or a board of more than MaxCells cells.
	ErrBadDimensions = errors.New("grid: bad dimensions")
	// ErrOutOfBounds indicates a cell outside [0,layers)×[0,width)×[0,height).
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// Cell is a position on the routing surface. It is an immutable value type;
// two cells are the same position iff their coordinates are equal.
type Cell struct {
	Layer, X, Y int
}

// String formats the cell as "(layer, x, y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.Layer, c.X, c.Y)
}

// Step returns the cell one unit away from c along d on the same layer.
// The result is not bounds-checked.
func (c Cell) Step(d Direction) Cell {
	off := offsets[d]
	return Cell{Layer: c.Layer, X: c.X + off[0], Y: c.Y + off[1]}
}

// OnLayer returns the cell at the same (x, y) on another layer.
func (c Cell) OnLayer(layer int) Cell {
	return Cell{Layer: layer, X: c.X, Y: c.Y}
}

// Direction is one of the four same-layer unit moves. Its value doubles as the
// index used to detect bends: two consecutive moves with different values bend.
// Layer changes are not directions.
type Direction int8

const (
	// NoDirection marks "no same-layer move yet", e.g. at a segment start.
	NoDirection Direction = -1
	// East moves +1 along X.
	East Direction = iota - 1
	// West moves −1 along X.
	West
	// South moves +1 along Y.
	South
	// North moves −1 along Y.
	North
)

// Directions lists the move family in expansion order.
var Directions = [4]Direction{East, West, South, North}

// offsets[d] is the (dx, dy) of direction d.
var offsets = [4][2]int{
	East:  {1, 0},
	West:  {-1, 0},
	South: {0, 1},
	North: {0, -1},
}

// String returns the compass name of d.
func (d Direction) String() string {
	switch d {
	case East:
		return "E"
	case West:
		return "W"
	case South:
		return "S"
	case North:
		return "N"
	default:
		return "-"
	}
}

// MaxCells is the largest board New accepts, counted over all layers.
const MaxCells = 1 << 28

// Grid is the occupancy model of the routing surface. Its dimensions are fixed
// at construction and key the flat cell slices. The obstacle slice is written only by New and is
// shared read-only between a grid and its baselines; claimed is owned by each
// grid and indexed row-major per layer (see index).
type Grid struct {
	width, height, layers int

	obstacles []bool
	claimed   []bool
	nObs      int
	nClaimed  int
}
