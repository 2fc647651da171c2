// Package grid models the multi-layer routing surface a maze router works on.
//
// What:
//
//   - Grid is a Width×Height board repeated over Layers stacked layers.
//   - Every position is a Cell{Layer, X, Y}; cells are plain comparable values
//     and can be used directly as map keys.
//   - A cell is blocked either statically (an obstacle, fixed for the whole run)
//     or dynamically (claimed by the wiring of an already committed net).
//   - Direction enumerates the four same-layer unit moves (E, W, S, N).
//
// Contract:
//
//   - InBounds(c)   reports whether c lies inside the board.
//   - IsObstacle(c) reports static blockage only.
//   - IsClaimed(c)  reports dynamic blockage only.
//   - IsRoutable(c) = InBounds ∧ ¬IsObstacle ∧ ¬IsClaimed.
//   - Claim(cells…) marks cells as claimed; claiming twice is not an error.
//   - ResetClaims() clears every claim and leaves obstacles untouched.
//   - Baseline()    returns an independent grid that shares the immutable
//     obstacle set but owns a fresh, empty claim set.
//
// Concurrency:
//
//	A Grid is not safe for concurrent mutation. The obstacle set is never
//	written after New returns, so distinct grids obtained from Baseline may be
//	read and claimed from different goroutines.
//
// Complexity:
//
//   - New:         O(L×W×H + |obstacles|) time and memory.
//   - Queries:     O(1).
//   - Claim:       O(k) for k cells.
//   - ResetClaims: O(L×W×H).
//
// Errors:
//
//   - ErrBadDimensions: width, height or layers is not positive.
//   - ErrOutOfBounds:   an obstacle or claimed cell lies outside the board.
package grid
