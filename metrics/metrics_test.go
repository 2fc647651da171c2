package metrics_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazeroute/metrics"
	"github.com/katalvlaran/mazeroute/route"
)

func TestSummarize_Empty(t *testing.T) {
	s := metrics.Summarize(nil)
	assert.Equal(t, metrics.Summary{}, s)
	assert.Empty(t, s.NetCosts())
}

func TestSummarize_SkipsFailures(t *testing.T) {
	fail := errors.New("blocked")
	results := []route.Result{
		{Net: "a", Cost: 5, WireLength: 4, Vias: 0},
		{Net: "b", Err: fail},
		{Net: "c", Cost: 12, WireLength: 7, Vias: 2},
	}
	got := metrics.Summarize(results)
	want := metrics.Summary{
		TotalCost:       17,
		TotalWireLength: 11,
		LongestRoute:    7,
		TotalVias:       2,
		Routed:          2,
		Failed:          1,
		Nets: []metrics.NetStatus{
			{Name: "a", Routed: true, Cost: 5, WireLength: 4},
			{Name: "b", Err: fail},
			{Name: "c", Routed: true, Cost: 12, WireLength: 7, Vias: 2},
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, map[string]int64{"a": 5, "c": 12}, got.NetCosts())
}

func TestSummarize_AllFailed(t *testing.T) {
	s := metrics.Summarize([]route.Result{{Net: "x", Err: route.ErrUnroutable}})
	assert.Zero(t, s.TotalCost)
	assert.Zero(t, s.TotalWireLength)
	assert.Zero(t, s.LongestRoute)
	assert.Zero(t, s.TotalVias)
	assert.Equal(t, 1, s.Failed)
}
