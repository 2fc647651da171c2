package grid

import "fmt"

// New constructs a Grid of the given dimensions with the given static
// obstacles and no claims. Duplicate obstacles are accepted.
// Returns ErrBadDimensions if any dimension is not positive or the board
// exceeds MaxCells cells, and
// ErrOutOfBounds (naming the offending cell) if an obstacle lies outside
// the board; out-of-bounds input is never clamped or ignored.
// Complexity: O(L×W×H + |obstacles|).
func New(width, height, layers int, obstacles []Cell) (*Grid, error) {
	if width <= 0 || height <= 0 || layers <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d×%d", ErrBadDimensions, width, height, layers)
	}
	// Divide rather than multiply so oversized boards cannot wrap around.
	if width > MaxCells/height || width*height > MaxCells/layers {
		return nil, fmt.Errorf("%w: %d×%d×%d exceeds %d cells", ErrBadDimensions, width, height, layers, MaxCells)
	}
	n := width * height * layers
	g := &Grid{
		width:     width,
		height:    height,
		layers:    layers,
		obstacles: make([]bool, n),
		claimed:   make([]bool, n),
	}
	for _, c := range obstacles {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: obstacle %s", ErrOutOfBounds, c)
		}
		i := g.index(c)
		if !g.obstacles[i] {
			g.obstacles[i] = true
			g.nObs++
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Layers returns the number of stacked layers.
func (g *Grid) Layers() int { return g.layers }

// InBounds reports whether c lies within the board on an existing layer.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Layer >= 0 && c.Layer < g.layers &&
		c.X >= 0 && c.X < g.width &&
		c.Y >= 0 && c.Y < g.height
}

// IsObstacle reports whether c is a static obstacle. Out-of-bounds cells are
// not obstacles (they are simply not routable).
func (g *Grid) IsObstacle(c Cell) bool {
	return g.InBounds(c) && g.obstacles[g.index(c)]
}

// IsClaimed reports whether c is occupied by a committed net.
func (g *Grid) IsClaimed(c Cell) bool {
	return g.InBounds(c) && g.claimed[g.index(c)]
}

// IsRoutable reports whether a wire may enter c.
// Complexity: O(1).
func (g *Grid) IsRoutable(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	i := g.index(c)

	return !g.obstacles[i] && !g.claimed[i]
}

// Claim marks every cell as occupied. Claiming an already claimed cell, or a
// static obstacle, is not an error. All cells are bounds-checked before any is
// marked, so a failed Claim leaves the grid unchanged.
func (g *Grid) Claim(cells ...Cell) error {
	for _, c := range cells {
		if !g.InBounds(c) {
			return fmt.Errorf("%w: claim %s", ErrOutOfBounds, c)
		}
	}
	for _, c := range cells {
		i := g.index(c)
		if !g.claimed[i] {
			g.claimed[i] = true
			g.nClaimed++
		}
	}

	return nil
}

// ResetClaims clears every claim, restoring the static-obstacle baseline.
func (g *Grid) ResetClaims() {
	if g.nClaimed == 0 {
		return
	}
	clear(g.claimed)
	g.nClaimed = 0
}

// Baseline returns a new Grid with the same dimensions and obstacles and no
// claims. The obstacle set is shared, the claim set is not, so the returned
// grid can be mutated independently of g.
func (g *Grid) Baseline() *Grid {
	return &Grid{
		width:     g.width,
		height:    g.height,
		layers:    g.layers,
		obstacles: g.obstacles,
		claimed:   make([]bool, len(g.claimed)),
		nObs:      g.nObs,
	}
}

// ObstacleCount returns the number of distinct static obstacles.
func (g *Grid) ObstacleCount() int { return g.nObs }

// ClaimedCount returns the number of distinct claimed cells.
func (g *Grid) ClaimedCount() int { return g.nClaimed }

// Obstacles returns the static obstacles in layer, row, column order.
func (g *Grid) Obstacles() []Cell {
	out := make([]Cell, 0, g.nObs)
	for i, blocked := range g.obstacles {
		if blocked {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}

// index maps c to its flat offset: (layer×height + y)×width + x.
func (g *Grid) index(c Cell) int {
	return (c.Layer*g.height+c.Y)*g.width + c.X
}

// Coordinate converts a flat offset back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	plane := g.width * g.height
	rem := idx % plane

	return Cell{Layer: idx / plane, X: rem % g.width, Y: rem / g.width}
}
