// Package cost prices the moves a maze router can make.
//
// A route is a chain of unit moves. Two kinds exist:
//
//   - Same-layer steps along one of the four grid.Directions. A step costs 1;
//     if it changes direction relative to the previous same-layer step it
//     costs 1 + BendPenalty. The first step of a segment never bends.
//   - Layer changes (vias) at a fixed (x, y). A via costs ViaPenalty no matter
//     where it happens or which way the wire was heading.
//
// The bend formula is additive, so a bend is never cheaper than a straight
// step. With both penalties at 0 every route costs its step count and the
// search degenerates to breadth-first search over cells.
//
// Errors:
//
//   - ErrNegativePenalty: a penalty passed to New is negative.
package cost
