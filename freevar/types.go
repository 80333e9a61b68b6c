// SPDX-License-Identifier: MIT
// Package freevar provides tunable options and error definitions for the
// free-variable branch-and-bound search.
package freevar

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the search.
var (
	// ErrInfeasible is returned when no nonnegative integer assignment
	// satisfies the reduced system.
	ErrInfeasible = errors.New("freevar: no nonnegative integer solution")

	// ErrNodeLimit is returned when the search visits more nodes than allowed.
	ErrNodeLimit = errors.New("freevar: node limit exceeded")

	// ErrNilSystem is returned when a nil system is passed.
	ErrNilSystem = errors.New("freevar: system is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("freevar: invalid option supplied")
)

// Bound selects how the upper bound of the next free-variable guess is
// derived.
type Bound int

const (
	// CapBound uses the per-button cap derived from the unreduced matrix
	// (min target over touched lights). No optimal assignment exceeds it on
	// 0/1 columns. Columns without a cap fall back to ResidualBound.
	CapBound Bound = iota

	// ResidualBound uses the largest residual among pivot rows whose
	// coefficient at the next free column agrees in sign with the residual.
	// It is a heuristic: a row with a negative coefficient and a negative
	// residual bounds the variable from below, so the optimum can be cut.
	ResidualBound
)

// String returns the config spelling of b.
func (b Bound) String() string {
	switch b {
	case ResidualBound:
		return "residual"
	case CapBound:
		return "cap"
	default:
		return fmt.Sprintf("Bound(%d)", int(b))
	}
}

// ParseBound maps "cap" or "residual" (case-insensitive) to a Bound.
// The empty string means CapBound.
func ParseBound(s string) (Bound, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cap":
		return CapBound, nil
	case "residual":
		return ResidualBound, nil
	default:
		return 0, fmt.Errorf("%w: unknown bound %q", ErrOptionViolation, s)
	}
}

// Option configures the search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Search is invoked.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Ctx allows cancellation; checked every 1024 nodes.
	Ctx context.Context

	// Bound is the guess bound policy.
	Bound Bound

	// NodeLimit, if > 0, aborts the search with ErrNodeLimit once exceeded.
	NodeLimit int

	err error
}

// DefaultOptions returns Options with context.Background, CapBound and no
// node limit.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Bound: CapBound,
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

// WithBound selects the guess bound policy.
func WithBound(b Bound) Option {
	return func(o *Options) {
		if b != CapBound && b != ResidualBound {
			o.err = fmt.Errorf("%w: unknown bound %d", ErrOptionViolation, int(b))
			return
		}
		o.Bound = b
	}
}

// WithNodeLimit caps the number of visited search nodes.
//
//	n > 0: limit to n nodes
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithNodeLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NodeLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeLimit = n
	}
}

// Solution is the optimal assignment found by Search.
type Solution struct {
	// Total is the minimal number of presses.
	Total int

	// Presses holds the press count of every button, indexed by button.
	Presses []int

	// Nodes is the number of search nodes visited.
	Nodes int
}
