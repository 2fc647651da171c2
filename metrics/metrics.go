package metrics

import "github.com/katalvlaran/mazeroute/route"

// NetStatus is the per-net line of a Summary.
type NetStatus struct {
	Name       string
	Routed     bool
	Cost       int64
	WireLength int
	Vias       int
	Err        error
}

// Summary holds run totals. Nets lists every result in the order given to
// Summarize.
type Summary struct {
	TotalCost       int64
	TotalWireLength int
	LongestRoute    int
	TotalVias       int
	Routed          int
	Failed          int
	Nets            []NetStatus
}

// Summarize folds results into a Summary.
func Summarize(results []route.Result) Summary {
	var s Summary
	for _, r := range results {
		s.Add(r)
	}

	return s
}

// Add folds one more result into s.
func (s *Summary) Add(r route.Result) {
	st := NetStatus{Name: r.Net, Routed: r.Routed(), Err: r.Err}
	if !st.Routed {
		s.Failed++
		s.Nets = append(s.Nets, st)
		return
	}
	st.Cost, st.WireLength, st.Vias = r.Cost, r.WireLength, r.Vias
	s.Nets = append(s.Nets, st)

	s.Routed++
	s.TotalCost += r.Cost
	s.TotalWireLength += r.WireLength
	s.TotalVias += r.Vias
	s.LongestRoute = max(s.LongestRoute, r.WireLength)
}

// NetCosts returns the cost of every routed net keyed by name.
func (s Summary) NetCosts() map[string]int64 {
	out := make(map[string]int64, s.Routed)
	for _, n := range s.Nets {
		if n.Routed {
			out[n.Name] = n.Cost
		}
	}

	return out
}
