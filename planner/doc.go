// Package planner decides the order in which nets are committed and runs the
// commit.
//
// Plan uses a two-pass protocol:
//
//  1. Dry pass. Every net is routed alone against the static obstacles only
//     (claims are reset before each net and discarded afterwards). Its wire
//     length is recorded as the net's stand-alone length.
//  2. Commit pass. Claims are reset, nets are sorted by ascending dry-pass
//     length (ties keep input order, dry-pass failures go last in input
//     order), and routed one after another with claims persisting, so every
//     later net avoids the wiring of earlier ones.
//
// Committing short nets first lowers the chance that one long wire walls off
// many short ones. The heuristic does not rip up and reroute: a net blocked
// in the commit pass simply fails.
//
// Concurrency:
//
//	The dry pass may run on several goroutines (WithDryPassWorkers). Each net
//	is then routed on its own grid.Baseline, which shares only the read-only
//	obstacle set. The commit pass is always sequential.
//
// Options:
//
//   - WithContext(ctx):        cancellation checked between nets.
//   - WithLogger(l):           charmbracelet/log logger for pass progress.
//   - WithDryPassWorkers(n):   dry-pass parallelism (n ≥ 1, default 1).
//   - WithDropUnroutable():    skip dry-pass failures in the commit pass.
//   - WithOnCommit(fn):        hook called after every commit-pass net.
//   - WithSearchOptions(o…):   options forwarded to every segment search.
//
// Errors:
//
//   - ErrNilGrid:         the grid pointer is nil.
//   - ErrDuplicateNet:    two nets share a name.
//   - ErrOptionViolation: an option received an invalid value.
package planner
