package search

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mazeroute/cost"
	"github.com/katalvlaran/mazeroute/grid"
)

// FindPath returns the cheapest path from start to end over the routable
// cells of g, priced by m.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and end must be in bounds (grid.ErrOutOfBounds).
//
// start is not required to be routable; end must be, unless start == end, in
// which case the one-cell path costs 0. Returns ErrNoPath when end cannot be
// reached within Options.MaxCost.
func FindPath(g *grid.Grid, m cost.Model, start, end grid.Cell, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate grid is non-nil.
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 3) Validate both endpoints lie on the board. Routability of start is
	// not checked: a pin may sit on its own net's wiring.
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %s", grid.ErrOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return Result{}, fmt.Errorf("%w: end %s", grid.ErrOutOfBounds, end)
	}

	// 4) Trivial segment: nothing to route.
	if start == end {
		return Result{Path: []grid.Cell{start}}, nil
	}

	// 5) Seed the frontier with start and no incoming direction.
	r := &runner{
		g:     g,
		m:     m,
		end:   end,
		max:   cfg.MaxCost,
		best:  make(map[state]int64),
		prev:  make(map[state]state),
		queue: make(frontier, 0, 64),
	}
	r.push(state{cell: start, dir: grid.NoDirection}, 0, state{}, false)

	// 6) Run the main loop until end is popped or the frontier drains.
	goal, ok := r.process()
	if !ok {
		return Result{Expanded: r.expanded}, fmt.Errorf("%w: %s → %s", ErrNoPath, start, end)
	}

	// 7) Reconstruct the path through the predecessor map.
	return Result{
		Path:     r.walkBack(goal),
		Cost:     r.best[goal],
		Expanded: r.expanded,
	}, nil
}

// runner holds the mutable state of a single FindPath execution.
type runner struct {
	g   *grid.Grid
	m   cost.Model
	end grid.Cell
	max int64

	best     map[state]int64 // cheapest known cost per (cell, direction)
	prev     map[state]state // predecessor on that cheapest arrival
	queue    frontier
	seq      uint64
	expanded int
}

// process pops states in cost order until a state on end is popped or the
// frontier runs dry. Stale entries (superseded by a cheaper push) are skipped.
func (r *runner) process() (state, bool) {
	for r.queue.Len() > 0 {
		it := heap.Pop(&r.queue).(item)
		// a) Skip stale entries left behind by a cheaper push.
		if it.cost > r.best[it.st] {
			continue
		}
		// b) Costs pop in order, so everything left is over the cap too.
		if it.cost > r.max {
			break
		}
		// c) First pop on end is optimal.
		if it.st.cell == r.end {
			return it.st, true
		}
		// d) Relax every move out of this state.
		r.expanded++
		r.expand(it.st, it.cost)
	}

	return state{}, false
}

// expand relaxes the four same-layer steps and every layer change out of s.
func (r *runner) expand(s state, at int64) {
	for _, d := range grid.Directions {
		next := s.cell.Step(d)
		if !r.g.IsRoutable(next) {
			continue
		}
		r.push(state{cell: next, dir: d}, cost.Add(at, r.m.StepCost(s.dir, d)), s, true)
	}
	for layer := 0; layer < r.g.Layers(); layer++ {
		if layer == s.cell.Layer {
			continue
		}
		next := s.cell.OnLayer(layer)
		if !r.g.IsRoutable(next) {
			continue
		}
		// A via keeps the incoming direction.
		r.push(state{cell: next, dir: s.dir}, cost.Add(at, r.m.ViaCost()), s, true)
	}
}

// push records c as the cost of s if it strictly improves on the best known
// cost for that exact state, and enqueues it.
func (r *runner) push(s state, c int64, from state, hasFrom bool) {
	if old, seen := r.best[s]; seen && c >= old {
		return
	}
	r.best[s] = c
	if hasFrom {
		r.prev[s] = from
	}
	r.seq++
	heap.Push(&r.queue, item{st: s, cost: c, seq: r.seq})
}

// walkBack rebuilds the cell path ending in goal from the predecessor map.
func (r *runner) walkBack(goal state) []grid.Cell {
	var path []grid.Cell
	at, ok := goal, true
	for ok {
		path = append(path, at.cell)
		at, ok = r.prev[at]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
