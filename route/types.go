package route

import (
	"errors"

	"github.com/katalvlaran/mazeroute/grid"
)

// Sentinel errors for net routing.
var (
	// ErrUnroutable marks a net that could not be connected under the current
	// grid state: a pin is blocked or a pin-to-pin segment has no path.
	ErrUnroutable = errors.New("route: net is unroutable")

	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("route: grid is nil")
)

// Net is a named, ordered pin sequence that must be electrically connected.
// Nets are read-only inputs; Route never modifies Pins.
type Net struct {
	Name string
	Pins []grid.Cell
}

// Result is the outcome of routing one net.
//
// On success Err is nil, Path is the stitched wire from the first pin to the
// last, Cost is the sum of segment costs, WireLength is len(Path)-1 and Vias
// counts consecutive path cells on different layers. On failure Err wraps
// ErrUnroutable and the remaining fields are zero.
type Result struct {
	Net        string
	Path       []grid.Cell
	Cost       int64
	WireLength int
	Vias       int
	Err        error
}

// Routed reports whether the net was connected.
func (r Result) Routed() bool { return r.Err == nil }
