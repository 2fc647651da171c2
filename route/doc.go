// Package route connects the pins of a single net and commits its wiring.
//
// Route walks the pins of a Net in order and runs search.FindPath for every
// consecutive pair. The segments are stitched into one Path (the joint cell
// shared by two segments appears once), and on success every cell of that path
// is claimed on the grid, so later nets route around it.
//
// Failure is all-or-nothing per net: if any pin is blocked or any segment has
// no path, the net claims nothing and its Result carries ErrUnroutable. Claims
// made by previously committed nets are untouched. A failing net never aborts
// the caller; it is reported through Result.Err.
//
// Nets with fewer than two pins need no wire. They succeed immediately with a
// zero-length path and claim nothing.
package route
