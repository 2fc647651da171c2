package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazeroute/cost"
	"github.com/katalvlaran/mazeroute/grid"
	"github.com/katalvlaran/mazeroute/search"
)

// Route connects the pins of n on g under m and, on success, claims the wire.
//
// Every pin must be routable before routing starts: a pin that is out of
// bounds, a static obstacle, or claimed by an earlier net fails the net with
// ErrUnroutable, the same as a segment without a path. Search options are
// forwarded to every segment search.
//
// The returned error is reserved for misuse (nil grid, invalid options);
// routing failures are reported in Result.Err.
func Route(g *grid.Grid, m cost.Model, n Net, opts ...search.Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	res := Result{Net: n.Name}
	if len(n.Pins) < 2 {
		// Nothing to connect.
		if len(n.Pins) == 1 {
			res.Path = []grid.Cell{n.Pins[0]}
		}
		return res, nil
	}

	for _, p := range n.Pins {
		if !g.IsRoutable(p) {
			res.Err = fmt.Errorf("%w: %q pin %s is blocked", ErrUnroutable, n.Name, p)
			return res, nil
		}
	}

	path := make([]grid.Cell, 0, 4*len(n.Pins))
	var total int64
	for i := 0; i+1 < len(n.Pins); i++ {
		seg, err := search.FindPath(g, m, n.Pins[i], n.Pins[i+1], opts...)
		if err != nil {
			if errors.Is(err, search.ErrNoPath) {
				res.Err = fmt.Errorf("%w: %q segment %d: %w", ErrUnroutable, n.Name, i, err)
				return res, nil
			}
			return Result{}, err
		}
		if i > 0 {
			// Drop the joint already appended by the previous segment.
			seg.Path = seg.Path[1:]
		}
		path = append(path, seg.Path...)
		total += seg.Cost
	}

	if err := g.Claim(path...); err != nil {
		return Result{}, err
	}
	res.Path = path
	res.Cost = total
	res.WireLength = len(path) - 1
	res.Vias = CountVias(path)

	return res, nil
}

// CountVias counts consecutive cells of path that sit on different layers.
func CountVias(path []grid.Cell) int {
	vias := 0
	for i := 1; i < len(path); i++ {
		if path[i].Layer != path[i-1].Layer {
			vias++
		}
	}

	return vias
}
