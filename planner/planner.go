package planner

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazeroute/cost"
	"github.com/katalvlaran/mazeroute/grid"
	"github.com/katalvlaran/mazeroute/metrics"
	"github.com/katalvlaran/mazeroute/route"
)

// Plan ranks nets with a dry pass and commits them in ranked order on g.
//
// On return g holds the claims of every net the commit pass connected, which
// lets callers inspect or extend the committed wiring. Per-net failures are
// reported in the Run; the error is reserved for invalid input, invalid
// options and context cancellation.
func Plan(g *grid.Grid, m cost.Model, nets []route.Net, opts ...Option) (*Run, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid is non-nil.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Net names key the summary; reject duplicates up front.
	seen := make(map[string]struct{}, len(nets))
	for _, n := range nets {
		if _, dup := seen[n.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNet, n.Name)
		}
		seen[n.Name] = struct{}{}
	}

	p := &planner{g: g, m: m, nets: nets, cfg: cfg}

	// 4) Dry pass: measure every net alone on the static obstacles.
	start := time.Now()
	ranking, err := p.dryPass()
	if err != nil {
		return nil, err
	}
	cfg.Logger.Info("dry pass done", "nets", len(nets), "elapsed", time.Since(start).Round(time.Microsecond))

	// 5) Rank: routable nets shortest first, ties by input order.
	order := Order(ranking)

	// 6) Commit pass: claims persist from one net to the next.
	start = time.Now()
	run, err := p.commitPass(order)
	if err != nil {
		return nil, err
	}
	cfg.Logger.Info("commit pass done",
		"routed", run.Summary.Routed,
		"failed", run.Summary.Failed,
		"cost", run.Summary.TotalCost,
		"elapsed", time.Since(start).Round(time.Microsecond))

	return run, nil
}

// Order sorts a dry-pass ranking into commit order: routable nets by ascending
// length, then unroutable ones; ties keep input order. The input is not
// modified.
func Order(ranking []Ranked) []Ranked {
	out := slices.Clone(ranking)
	slices.SortStableFunc(out, func(a, b Ranked) int {
		if a.Routable != b.Routable {
			if a.Routable {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(a.Length, b.Length); c != 0 {
			return c
		}

		return cmp.Compare(a.Index, b.Index)
	})

	return out
}

// planner holds the inputs of a single Plan call.
type planner struct {
	g    *grid.Grid
	m    cost.Model
	nets []route.Net
	cfg  Options
}

// dryPass measures every net alone against the static obstacles. It leaves g
// without claims.
func (p *planner) dryPass() ([]Ranked, error) {
	ranking := make([]Ranked, len(p.nets))
	defer p.g.ResetClaims()

	if p.cfg.DryPassWorkers <= 1 {
		for i, n := range p.nets {
			if err := p.cfg.Ctx.Err(); err != nil {
				return nil, fmt.Errorf("planner: dry pass interrupted: %w", err)
			}
			p.g.ResetClaims()
			r, err := p.measure(p.g, i, n)
			if err != nil {
				return nil, err
			}
			ranking[i] = r
		}

		return ranking, nil
	}

	eg, ctx := errgroup.WithContext(p.cfg.Ctx)
	eg.SetLimit(p.cfg.DryPassWorkers)
	for i, n := range p.nets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("planner: dry pass interrupted: %w", err)
			}
			r, err := p.measure(p.g.Baseline(), i, n)
			if err != nil {
				return err
			}
			ranking[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return ranking, nil
}

// measure routes n on g and records its stand-alone length.
func (p *planner) measure(g *grid.Grid, i int, n route.Net) (Ranked, error) {
	res, err := route.Route(g, p.m, n, p.cfg.Search...)
	if err != nil {
		return Ranked{}, fmt.Errorf("planner: dry pass %q: %w", n.Name, err)
	}
	r := Ranked{Name: n.Name, Index: i, Routable: res.Routed()}
	if r.Routable {
		r.Length = res.WireLength
		p.cfg.Logger.Debug("dry pass", "net", n.Name, "length", r.Length)
	} else {
		p.cfg.Logger.Debug("dry pass unroutable", "net", n.Name, "err", res.Err)
	}

	return r, nil
}

// commitPass routes nets in order with claims persisting between them.
func (p *planner) commitPass(order []Ranked) (*Run, error) {
	p.g.ResetClaims()
	run := &Run{
		Ranking: make([]Ranked, 0, len(order)),
		Results: make([]route.Result, 0, len(order)),
	}
	var dropped []Ranked
	for _, r := range order {
		// Dropped nets are still reported, after the committed ones.
		if !r.Routable && p.cfg.DropUnroutable {
			dropped = append(dropped, r)
			continue
		}
		if err := p.cfg.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("planner: commit pass interrupted: %w", err)
		}
		res, err := route.Route(p.g, p.m, p.nets[r.Index], p.cfg.Search...)
		if err != nil {
			return nil, fmt.Errorf("planner: commit %q: %w", r.Name, err)
		}
		if res.Routed() {
			p.cfg.Logger.Debug("net routed", "net", res.Net, "length", res.WireLength, "cost", res.Cost, "vias", res.Vias)
		} else {
			p.cfg.Logger.Warn("net failed", "net", res.Net, "err", res.Err)
		}
		p.cfg.OnCommit(res)

		r.Committed = true
		run.Ranking = append(run.Ranking, r)
		run.Results = append(run.Results, res)
	}
	for _, r := range dropped {
		p.cfg.Logger.Warn("net skipped", "net", r.Name)
		run.Ranking = append(run.Ranking, r)
		run.Results = append(run.Results, route.Result{
			Net: r.Name,
			Err: fmt.Errorf("%w: %q failed the dry pass", route.ErrUnroutable, r.Name),
		})
	}
	run.Summary = metrics.Summarize(run.Results)

	return run, nil
}
