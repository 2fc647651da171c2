package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeroute/planner"
	"github.com/katalvlaran/mazeroute/problem"
	"github.com/katalvlaran/mazeroute/report"
)

const doc = `
width = 3
height = 3
layers = 2
bend_penalty = 1
via_penalty = 1
obstacles = [[0, 1, 0]]

[[net]]
name = "wide"
pins = [[0, 0, 0], [0, 2, 0]]

[[net]]
name = "dead"
pins = [[0, 1, 0], [0, 1, 2]]
`

func TestWrite(t *testing.T) {
	d, err := problem.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	g, m, nets, err := d.Build()
	require.NoError(t, err)
	run, err := planner.Plan(g, m, nets)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, d, run))

	want := strings.Join([]string{
		"3, 3, 1, 1",
		"OBS(0, 1, 0)",
		"wide (0, 0, 0) (1, 0, 0) (1, 1, 0) (1, 2, 0) (0, 2, 0)",
		"dead FAILED",
		"",
		"Summary:",
		"Sorted nets by length:",
		"wide: 4",
		"dead: unroutable",
		"Total cost of routing: 4",
		"Total wire length: 4",
		"Longest route length: 4",
		"Total vias used: 2",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesWriteError(t *testing.T) {
	d := &problem.Description{Width: 1, Height: 1, Layers: 1}
	err := report.Write(failingWriter{}, d, &planner.Run{})
	require.Error(t, err)
}
