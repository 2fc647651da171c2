// Package report writes the plain-text routing report.
//
// Layout:
//
//	<width>, <height>, <bend_penalty>, <via_penalty>
//	OBS(<layer>, <x>, <y>)                one line per static obstacle
//	<net> (<l>, <x>, <y>) (<l>, <x>, <y>) …  one line per net, commit order
//	<net> FAILED                           for nets that did not route
//
//	Summary:
//	Sorted nets by length:
//	<net>: <dry length | unroutable>
//	Total cost of routing: <n>
//	Total wire length: <n>
//	Longest route length: <n>
//	Total vias used: <n>
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/mazeroute/planner"
	"github.com/katalvlaran/mazeroute/problem"
)

// Write renders d and run to w.
func Write(w io.Writer, d *problem.Description, run *planner.Run) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d, %d, %d, %d\n", d.Width, d.Height, d.BendPenalty, d.ViaPenalty)
	for _, p := range d.Obstacles {
		fmt.Fprintf(bw, "OBS(%d, %d, %d)\n", p[0], p[1], p[2])
	}

	for _, r := range run.Results {
		if !r.Routed() {
			fmt.Fprintf(bw, "%s FAILED\n", r.Net)
			continue
		}
		bw.WriteString(r.Net)
		for _, c := range r.Path {
			bw.WriteByte(' ')
			bw.WriteString(c.String())
		}
		bw.WriteByte('\n')
	}

	s := run.Summary
	bw.WriteString("\nSummary:\nSorted nets by length:\n")
	for _, rk := range run.Ranking {
		if rk.Routable {
			fmt.Fprintf(bw, "%s: %d\n", rk.Name, rk.Length)
		} else {
			fmt.Fprintf(bw, "%s: unroutable\n", rk.Name)
		}
	}
	fmt.Fprintf(bw, "Total cost of routing: %d\n", s.TotalCost)
	fmt.Fprintf(bw, "Total wire length: %d\n", s.TotalWireLength)
	fmt.Fprintf(bw, "Longest route length: %d\n", s.LongestRoute)
	fmt.Fprintf(bw, "Total vias used: %d\n", s.TotalVias)

	return bw.Flush()
}
