package problem

import (
	"errors"

	"github.com/katalvlaran/mazeroute/grid"
)

// ErrInvalidConfig wraps every validation failure of a Description.
var ErrInvalidConfig = errors.New("problem: invalid configuration")

// DefaultLayers is the layer count used when a description omits it.
const DefaultLayers = 2

// Point is a cell written as [layer, x, y].
type Point [3]int

// Cell converts p to a grid.Cell.
func (p Point) Cell() grid.Cell {
	return grid.Cell{Layer: p[0], X: p[1], Y: p[2]}
}

// PointOf converts c back to its written form.
func PointOf(c grid.Cell) Point {
	return Point{c.Layer, c.X, c.Y}
}

// NetSpec is one net as written in the description.
type NetSpec struct {
	Name string  `toml:"name"`
	Pins []Point `toml:"pins"`
}

// Description is a complete routing job.
type Description struct {
	Width       int       `toml:"width"`
	Height      int       `toml:"height"`
	Layers      int       `toml:"layers"`
	BendPenalty int64     `toml:"bend_penalty"`
	ViaPenalty  int64     `toml:"via_penalty"`
	Obstacles   []Point   `toml:"obstacles"`
	Nets        []NetSpec `toml:"net"`
}
