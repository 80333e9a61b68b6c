// SPDX-License-Identifier: MIT
// Package parity provides options, sentinel errors and value types for the
// parity bifurcation solver.
package parity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/factory/machine"
)

// Sentinel errors for table construction and solving.
var (
	// ErrTooManyButtons is returned when a machine has more buttons than the
	// subset table is allowed to enumerate.
	ErrTooManyButtons = errors.New("parity: too many buttons to enumerate subsets")

	// ErrUnreachable is returned when no press vector reaches the target
	// (or, for MinToggle, when no subset produces the diagram).
	ErrUnreachable = errors.New("parity: target unreachable")

	// ErrLengthMismatch is returned when a target or diagram length differs
	// from the table's light count.
	ErrLengthMismatch = errors.New("parity: vector length does not match lights")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("parity: invalid option supplied")
)

const (
	// DefaultMaxButtons bounds the subset enumeration (2^16 subsets).
	DefaultMaxButtons = 16

	// HardMaxButtons is the largest value accepted by WithMaxButtons.
	HardMaxButtons = 24
)

// Option configures table construction via functional arguments.
type Option func(*Options)

// Options holds table construction parameters.
type Options struct {
	// MaxButtons is the largest button count NewTable accepts.
	MaxButtons int

	err error
}

// DefaultOptions returns Options with MaxButtons = DefaultMaxButtons.
func DefaultOptions() Options {
	return Options{MaxButtons: DefaultMaxButtons}
}

// WithMaxButtons raises or lowers the enumeration limit.
//
//	1 ≤ n ≤ HardMaxButtons: accepted
//	otherwise: invalid option → ErrOptionViolation
func WithMaxButtons(n int) Option {
	return func(o *Options) {
		if n < 1 || n > HardMaxButtons {
			o.err = fmt.Errorf("%w: MaxButtons must be in [1,%d] (%d)", ErrOptionViolation, HardMaxButtons, n)
			return
		}
		o.MaxButtons = n
	}
}

// Subset is the outcome of pressing every button of a subset exactly once.
type Subset struct {
	// Mask has bit b set iff button b is in the subset.
	Mask uint32

	// Size is the number of buttons in the subset (its press count).
	Size int

	// Increment is the light vector added by pressing the subset once.
	Increment machine.LightVector
}

// Has reports whether button b is in the subset.
func (s Subset) Has(b int) bool { return s.Mask&(1<<uint(b)) != 0 }

// Result is the optimum found by a Solver.
type Result struct {
	// Total is the minimal number of presses.
	Total int

	// Presses holds the press count of every button, indexed by button.
	Presses []int
}
