// Package search finds the cheapest wire between two cells of a grid.Grid.
//
// Overview:
//
//   - FindPath runs a uniform-cost search (Dijkstra) from start to end under a
//     cost.Model. Moves are the four same-layer steps plus a layer change to
//     every other layer at the same (x, y).
//   - The search state is (cell, last same-layer direction), not just the cell:
//     the price of the next step depends on the incoming direction, so two
//     arrivals at one cell from different directions are distinct states.
//   - A via keeps the incoming direction; it neither charges nor clears a bend.
//   - Only routable neighbors are entered. start itself is never re-checked,
//     which lets a net leave a pin it already owns.
//   - Ties between equal-cost frontier states pop in insertion order, so the
//     returned path is reproducible run to run.
//
// Complexity:
//
//   - Time:  O(S log S) with S = 5×L×W×H states (4 directions + none).
//   - Space: O(S) for the best-cost and predecessor maps and the lazy heap.
//
// Options:
//
//   - WithMaxCost(c): states costing more than c are never expanded.
//
// Errors:
//
//   - ErrNilGrid:         the grid pointer is nil.
//   - ErrNoPath:          end is unreachable under the current grid state.
//   - ErrOptionViolation: an option received an invalid value.
//   - grid.ErrOutOfBounds: start or end lies outside the grid.
package search
