package problem

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/mazeroute/cost"
	"github.com/katalvlaran/mazeroute/grid"
	"github.com/katalvlaran/mazeroute/route"
)

// Load reads and validates a TOML description from path.
func Load(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads and validates a TOML description from r. Unknown keys are
// rejected so typos do not silently drop obstacles or nets.
func Decode(r io.Reader) (*Description, error) {
	var d Description
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	if d.Layers == 0 && !md.IsDefined("layers") {
		d.Layers = DefaultLayers
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Validate checks d without building anything.
func (d *Description) Validate() error {
	_, _, _, err := d.Build()
	return err
}

// Build validates d and returns the grid with its static obstacles, the cost
// model and the nets in input order.
func (d *Description) Build() (*grid.Grid, cost.Model, []route.Net, error) {
	obstacles := make([]grid.Cell, len(d.Obstacles))
	for i, p := range d.Obstacles {
		obstacles[i] = p.Cell()
	}
	g, err := grid.New(d.Width, d.Height, d.Layers, obstacles)
	if err != nil {
		return nil, cost.Model{}, nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	m, err := cost.New(d.BendPenalty, d.ViaPenalty)
	if err != nil {
		return nil, cost.Model{}, nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	nets := make([]route.Net, 0, len(d.Nets))
	seen := make(map[string]struct{}, len(d.Nets))
	for i, ns := range d.Nets {
		if ns.Name == "" {
			return nil, cost.Model{}, nil, fmt.Errorf("%w: net #%d has no name", ErrInvalidConfig, i)
		}
		if _, dup := seen[ns.Name]; dup {
			return nil, cost.Model{}, nil, fmt.Errorf("%w: duplicate net %q", ErrInvalidConfig, ns.Name)
		}
		seen[ns.Name] = struct{}{}
		if len(ns.Pins) < 2 {
			return nil, cost.Model{}, nil, fmt.Errorf("%w: net %q needs at least 2 pins, has %d", ErrInvalidConfig, ns.Name, len(ns.Pins))
		}
		pins := make([]grid.Cell, len(ns.Pins))
		for j, p := range ns.Pins {
			c := p.Cell()
			if !g.InBounds(c) {
				return nil, cost.Model{}, nil, fmt.Errorf("%w: net %q pin %s: %w", ErrInvalidConfig, ns.Name, c, grid.ErrOutOfBounds)
			}
			pins[j] = c
		}
		nets = append(nets, route.Net{Name: ns.Name, Pins: pins})
	}

	return g, m, nets, nil
}
