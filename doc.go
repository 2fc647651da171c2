// Package mazeroute is a multi-layer maze router for early-stage PCB and IC
// interconnect planning.
//
// What it does:
//
//	Given a layered grid with static obstacles and a list of nets (ordered pin
//	sequences), mazeroute connects every net with the cheapest wire it can
//	find, where a wire pays 1 per step, an extra bend penalty whenever it turns
//	and a via penalty whenever it changes layer. Nets are committed one at a
//	time; each committed wire blocks the nets that follow.
//
// Packages, leaves first:
//
//	grid/     — Cell, Direction and the occupancy Grid (obstacles + claims)
//	cost/     — the single bend/via cost Model
//	search/   — uniform-cost segment search over (cell, direction) states
//	route/    — stitches segments into one net and claims its wire
//	metrics/  — run totals: cost, wire length, longest route, vias
//	planner/  — dry pass to rank nets by length, then the commit pass
//	problem/  — TOML problem descriptions and their validation
//	report/   — the plain-text routing report
//
// Quick ASCII example (layer 0, '#' obstacle, 'x' contested cell):
//
//	# # . # #
//	. . x . .
//	# # . # #
//
// The vertical net is shorter, so it is committed first and takes 'x'; the
// horizontal net then has no path and is reported as failed.
//
//	go run ./cmd/mazeroute route problem.toml
package mazeroute
