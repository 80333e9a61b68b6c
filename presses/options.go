// SPDX-License-Identifier: MIT

package presses

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/factory/freevar"
	"github.com/katalvlaran/factory/parity"
)

// Sentinel errors for the facade.
var (
	// ErrUnknownStrategy is returned for a strategy name or value that does
	// not exist.
	ErrUnknownStrategy = errors.New("presses: unknown strategy")

	// ErrNilMachine is returned when a nil machine is passed.
	ErrNilMachine = errors.New("presses: machine is nil")

	// ErrNoDiagram is returned by SolveLights for a machine without a light
	// diagram.
	ErrNoDiagram = errors.New("presses: machine has no light diagram")

	// ErrVerify is returned when an engine's press vector does not
	// reproduce the target.
	ErrVerify = errors.New("presses: press vector does not reproduce target")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("presses: invalid option supplied")
)

// Strategy selects the engine used by Solve.
type Strategy int

const (
	// Auto runs Reduction and falls back to Bifurcation when elimination
	// overflows and the machine is small enough to enumerate.
	Auto Strategy = iota

	// Reduction is fraction-free row reduction plus free-variable search.
	Reduction

	// Bifurcation is the memoized parity halving recursion.
	Bifurcation

	// BreadthFirst is the unit-press breadth-first baseline.
	BreadthFirst

	// PseudoBoolean is the gophersat binary-expansion engine.
	PseudoBoolean

	// MinToggle labels SolveLights results, which come from a single
	// parity-bucket lookup. It cannot be selected for Solve.
	MinToggle
)

var strategyNames = [...]string{
	Auto:          "auto",
	Reduction:     "reduction",
	Bifurcation:   "bifurcation",
	BreadthFirst:  "bfs",
	PseudoBoolean: "pb",
	MinToggle:     "min-toggle",
}

// String returns the config spelling of s.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps a config spelling (case-insensitive) to a selectable
// Strategy. The empty string means Auto.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Auto, nil
	}
	for s := Auto; s <= PseudoBoolean; s++ {
		if strategyNames[s] == n {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

// Option configures the facade via functional arguments.
// An invalid Option is recorded and surfaced when Solve is invoked.
type Option func(*Options)

// Options holds facade parameters.
type Options struct {
	// Ctx allows cancellation between machines and inside the search engines.
	Ctx context.Context

	// Strategy selects the engine.
	Strategy Strategy

	// Bound is the free-variable guess bound for Reduction.
	Bound freevar.Bound

	// NodeLimit caps free-variable search nodes (0 = unlimited).
	NodeLimit int

	// MaxButtons caps subset enumeration for Bifurcation and SolveLights.
	MaxButtons int

	// MaxStates caps discovered states for BreadthFirst (0 = unlimited).
	MaxStates int

	// Lights makes SolveAll answer the light-diagram problem as well.
	Lights bool

	// Logger receives per-machine debug records and the summary.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with Auto strategy, CapBound, the
// parity package's default button limit and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Strategy:   Auto,
		Bound:      freevar.CapBound,
		MaxButtons: parity.DefaultMaxButtons,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
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

// WithStrategy selects the engine.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s < Auto || s > PseudoBoolean {
			o.err = fmt.Errorf("Strategy(%d): %w", int(s), ErrUnknownStrategy)
			return
		}
		o.Strategy = s
	}
}

// WithBound selects the free-variable bound policy.
func WithBound(b freevar.Bound) Option {
	return func(o *Options) {
		if b != freevar.CapBound && b != freevar.ResidualBound {
			o.err = fmt.Errorf("%w: unknown bound %d", ErrOptionViolation, int(b))
			return
		}
		o.Bound = b
	}
}

// WithNodeLimit caps free-variable search nodes; n must be ≥ 0.
func WithNodeLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NodeLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeLimit = n
	}
}

// WithMaxButtons sets the subset enumeration limit, 1..parity.HardMaxButtons.
func WithMaxButtons(n int) Option {
	return func(o *Options) {
		if n < 1 || n > parity.HardMaxButtons {
			o.err = fmt.Errorf("%w: MaxButtons must be in [1,%d] (%d)", ErrOptionViolation, parity.HardMaxButtons, n)
			return
		}
		o.MaxButtons = n
	}
}

// WithMaxStates caps BFS states; n must be ≥ 0.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithLights makes SolveAll also answer the light-diagram problem.
func WithLights(on bool) Option {
	return func(o *Options) { o.Lights = on }
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
