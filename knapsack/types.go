// SPDX-License-Identifier: MIT

package knapsack

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Sentinel errors returned by the knapsack solvers.
var (
	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNegativeValue indicates an item with a value below zero.
	ErrNegativeValue = errors.New("knapsack: item value must be non-negative")

	// ErrNegativeWeight indicates an item with a weight below zero.
	ErrNegativeWeight = errors.New("knapsack: item weight must be non-negative")

	// ErrNonFinite indicates a NaN or infinite capacity, value or weight.
	ErrNonFinite = errors.New("knapsack: non-finite number")

	// ErrLengthMismatch indicates that values and weights have different lengths.
	ErrLengthMismatch = errors.New("knapsack: values and weights differ in length")

	// ErrBadOption indicates an out-of-domain option (negative limit or worker count).
	ErrBadOption = errors.New("knapsack: invalid option")

	// ErrTooManyItems indicates an instance too large for Exhaustive.
	ErrTooManyItems = errors.New("knapsack: too many items for exhaustive search")

	// ErrSearchLimitReached is matched by every early-termination error.
	// The accompanying Result holds a feasible but unproven incumbent.
	ErrSearchLimitReached = errors.New("knapsack: search limit reached")

	// ErrNodeLimit indicates that the node budget was exhausted.
	ErrNodeLimit = fmt.Errorf("%w: node limit", ErrSearchLimitReached)

	// ErrTimeLimit indicates that the time budget was exhausted.
	ErrTimeLimit = fmt.Errorf("%w: time limit", ErrSearchLimitReached)

	// ErrCanceled indicates that the caller's context ended the search.
	ErrCanceled = fmt.Errorf("%w: canceled", ErrSearchLimitReached)
)

// Item field names reported by ItemError.
const (
	FieldValue  = "value"
	FieldWeight = "weight"
)

// ItemError reports an invalid item. It unwraps to ErrNegativeValue,
// ErrNegativeWeight or ErrNonFinite.
type ItemError struct {
	Index int     // original position of the item
	Field string  // FieldValue or FieldWeight
	Value float64 // offending number
	Err   error   // sentinel
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%v: item %d %s=%g", e.Err, e.Index, e.Field, e.Value)
}

func (e *ItemError) Unwrap() error { return e.Err }

// Item is one candidate object. The solver only reads items.
type Item struct {
	Value  float64
	Weight float64
}

// Status tells whether a Result is a proven optimum.
type Status int

const (
	// StatusOptimal means the frontier was exhausted: Value is the optimum.
	StatusOptimal Status = iota
	// StatusNodeLimit means the node budget stopped the search.
	StatusNodeLimit
	// StatusTimeLimit means the time budget stopped the search.
	StatusTimeLimit
	// StatusCanceled means the context stopped the search.
	StatusCanceled
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusNodeLimit:
		return "node_limit"
	case StatusTimeLimit:
		return "time_limit"
	case StatusCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Stats holds search diagnostics. None of them is guaranteed minimal.
type Stats struct {
	Pushed     int           // nodes placed on the frontier
	Pruned     int           // popped nodes discarded by the bound test
	Incumbents int           // strict incumbent improvements
	Elapsed    time.Duration // wall-clock time of the search
	Workers    int           // goroutines that ran the search
}

// Result is the outcome of a solve.
//
// Selected holds original item indices, strictly ascending. Value and Weight
// are the sums over Selected. NodesExpanded counts frontier pops.
type Result struct {
	Value         float64
	Weight        float64
	Selected      []int
	NodesExpanded int
	Status        Status
	Stats         Stats
}

// Optimal reports whether Value is a proven optimum.
func (r Result) Optimal() bool { return r.Status == StatusOptimal }

// Observer receives every finished solve, early-terminated ones included.
// n is the item count and capacity the instance capacity.
type Observer interface {
	ObserveSolve(n int, capacity float64, res Result)
}

// Options configures a solve. Zero limits mean "unlimited".
type Options struct {
	NodeLimit int           // max frontier pops; 0 = unlimited
	TimeLimit time.Duration // wall-clock budget; 0 = unlimited
	Workers   int           // goroutines; ≤1 = sequential engine
	Logger    *slog.Logger  // debug tracing; never nil after DefaultOptions
	Observer  Observer      // optional completion hook
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithNodeLimit caps the number of frontier pops. n must be ≥ 0.
func WithNodeLimit(n int) Option {
	return func(o *Options) { o.NodeLimit = n }
}

// WithTimeLimit caps the wall-clock time of the search. d must be ≥ 0.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithWorkers selects the concurrent engine when k > 1. k must be ≥ 0.
func WithWorkers(k int) Option {
	return func(o *Options) { o.Workers = k }
}

// WithLogger enables debug tracing of incumbent updates and completion.
// A nil logger keeps the default (discard).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers a completion hook.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// DefaultOptions returns the sequential, unlimited, silent configuration.
func DefaultOptions() Options {
	return Options{
		NodeLimit: 0,
		TimeLimit: 0,
		Workers:   1,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Observer:  nil,
	}
}

// buildOptions applies opts over DefaultOptions and checks their domains.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.NodeLimit < 0 {
		return cfg, fmt.Errorf("%w: node limit %d", ErrBadOption, cfg.NodeLimit)
	}
	if cfg.TimeLimit < 0 {
		return cfg, fmt.Errorf("%w: time limit %s", ErrBadOption, cfg.TimeLimit)
	}
	if cfg.Workers < 0 {
		return cfg, fmt.Errorf("%w: workers %d", ErrBadOption, cfg.Workers)
	}

	return cfg, nil
}
