package route_test

import (
	"fmt"

	"github.com/katalvlaran/mazeroute/cost"
	"github.com/katalvlaran/mazeroute/grid"
	"github.com/katalvlaran/mazeroute/route"
)

// ExampleRoute commits one net and shows that a second net crossing its wire
// fails instead of shorting.
func ExampleRoute() {
	g, _ := grid.New(3, 3, 1, nil)
	m, _ := cost.New(0, 0)

	across := route.Net{Name: "across", Pins: []grid.Cell{{Layer: 0, X: 0, Y: 1}, {Layer: 0, X: 2, Y: 1}}}
	down := route.Net{Name: "down", Pins: []grid.Cell{{Layer: 0, X: 1, Y: 0}, {Layer: 0, X: 1, Y: 2}}}

	for _, n := range []route.Net{across, down} {
		res, _ := route.Route(g, m, n)
		if res.Routed() {
			fmt.Printf("%s: length %d cost %d\n", res.Net, res.WireLength, res.Cost)
		} else {
			fmt.Printf("%s: failed\n", res.Net)
		}
	}
	// Output:
	// across: length 2 cost 2
	// down: failed
}
