// SPDX-License-Identifier: MIT

package pbsolve

import (
	"errors"
	"fmt"
)

var (
	// ErrInfeasible is returned when no press vector reaches the target.
	ErrInfeasible = errors.New("pbsolve: no solution")

	// ErrTooLarge is returned when the formulation needs more boolean
	// variables than allowed.
	ErrTooLarge = errors.New("pbsolve: formulation too large")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pbsolve: invalid option supplied")
)

// DefaultMaxVars bounds the number of boolean variables.
const DefaultMaxVars = 2048

// Option configures Solve.
type Option func(*Options)

// Options holds Solve parameters.
type Options struct {
	MaxVars int
	err     error
}

// DefaultOptions returns Options with MaxVars = DefaultMaxVars.
func DefaultOptions() Options { return Options{MaxVars: DefaultMaxVars} }

// WithMaxVars sets the variable limit; n must be positive.
func WithMaxVars(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxVars must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVars = n
	}
}

// Result is the optimum reported by the pseudo-boolean solver.
type Result struct {
	Total   int   // minimal number of presses
	Presses []int // per-button press counts
	Vars    int   // boolean variables in the formulation
}
