// Package metrics aggregates per-net routing results into run totals.
//
// Summarize sums cost, wire length and vias and tracks the longest single
// route, over successful results only. Failed nets are counted and listed but
// contribute nothing to the totals. An empty or all-failed run yields zero
// totals, not an error.
package metrics
