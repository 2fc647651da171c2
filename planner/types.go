package planner

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mazeroute/metrics"
	"github.com/katalvlaran/mazeroute/route"
	"github.com/katalvlaran/mazeroute/search"
)

// Sentinel errors for planning.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Plan.
	ErrNilGrid = errors.New("planner: grid is nil")

	// ErrDuplicateNet indicates two nets with the same name.
	ErrDuplicateNet = errors.New("planner: duplicate net name")

	// ErrOptionViolation indicates that an Option received an invalid value.
	ErrOptionViolation = errors.New("planner: invalid option supplied")
)

// Ranked is one net's dry-pass measurement.
type Ranked struct {
	Name      string
	Index     int  // position in the input slice
	Length    int  // stand-alone wire length; 0 when !Routable
	Routable  bool // whether the dry pass connected the net
	Committed bool // whether the commit pass attempted the net
}

// Run is the outcome of Plan.
//
// Ranking lists every net in commit order with its dry-pass measurement.
// Results holds one route.Result per net in the same order; nets skipped by
// WithDropUnroutable carry a failure. Summary aggregates Results.
type Run struct {
	Ranking []Ranked
	Results []route.Result
	Summary metrics.Summary
}

// Options configures Plan.
type Options struct {
	// Ctx allows cancellation between nets.
	Ctx context.Context

	// Logger receives pass progress. Defaults to a logger writing to io.Discard.
	Logger *log.Logger

	// DryPassWorkers is the number of goroutines used by the dry pass.
	DryPassWorkers int

	// DropUnroutable excludes dry-pass failures from the commit pass.
	DropUnroutable bool

	// OnCommit is called after each commit-pass net with its result.
	OnCommit func(route.Result)

	// Search is forwarded to every segment search.
	Search []search.Option

	// internal error recorded during option parsing
	err error
}

// Option configures Plan via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context, a discarding
// logger, a sequential dry pass and a no-op commit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Logger:         log.New(io.Discard),
		DryPassWorkers: 1,
		OnCommit:       func(route.Result) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes pass progress to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDryPassWorkers runs the dry pass on n goroutines.
//
//	n ≥ 1: use n workers
//	n < 1: invalid option → ErrOptionViolation
func WithDryPassWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: DryPassWorkers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.DryPassWorkers = n
	}
}

// WithDropUnroutable leaves nets that fail the dry pass out of the commit
// pass. They are still reported as failed.
func WithDropUnroutable() Option {
	return func(o *Options) {
		o.DropUnroutable = true
	}
}

// WithOnCommit registers a callback run after every commit-pass net.
func WithOnCommit(fn func(route.Result)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCommit = fn
		}
	}
}

// WithSearchOptions forwards opts to every segment search.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}
