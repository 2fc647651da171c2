package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mazeroute/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNoPath indicates that the frontier emptied without reaching end.
	ErrNoPath = errors.New("search: no routable path")

	// ErrOptionViolation indicates that an Option received an invalid value.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Result is a successful segment: the cells from start to end inclusive and the
// accumulated move cost. Expanded counts popped, non-stale states.
type Result struct {
	Path     []grid.Cell
	Cost     int64
	Expanded int
}

// Options configures FindPath.
type Options struct {
	// MaxCost caps exploration: states whose cost exceeds it are not expanded.
	// Default is math.MaxInt64 (no cap).
	MaxCost int64

	// err records an invalid option until FindPath surfaces it.
	err error
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns Options with no cost cap.
func DefaultOptions() Options {
	return Options{MaxCost: math.MaxInt64}
}

// WithMaxCost caps the cost of explored states. A negative cap is recorded and
// reported as ErrOptionViolation.
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// state is the composite search key: where the wire is and which way its last
// same-layer step went.
type state struct {
	cell grid.Cell
	dir  grid.Direction
}

// item is a heap entry. seq orders equal-cost entries first-in first-out.
type item struct {
	st   state
	cost int64
	seq  uint64
}

// frontier is a min-heap of items ordered by (cost, seq).
type frontier []item

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(item)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]

	return it
}
