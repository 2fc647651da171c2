// Package problem holds the structured description of a routing job and turns
// it into engine inputs.
//
// A Description carries the board size, the layer count, both penalties, the
// static obstacles and the nets in input order. Validate rejects anything the
// engine must never see: non-positive dimensions, negative penalties, cells
// outside the board, nets without a name, duplicate names and nets with fewer
// than two pins. Nothing is clamped or silently dropped.
//
// Descriptions are usually read from TOML:
//
//	width = 5
//	height = 5
//	layers = 2
//	bend_penalty = 1
//	via_penalty = 3
//	obstacles = [[0, 1, 1], [1, 3, 2]]
//
//	[[net]]
//	name = "net1"
//	pins = [[0, 0, 0], [0, 4, 4]]
//
// Cells are written [layer, x, y]. The [[net]] array of tables keeps the input
// order, which the planner uses to break ties. layers may be omitted and then
// defaults to DefaultLayers.
package problem
