// SPDX-License-Identifier: MIT
// Package bfs provides tunable options and error definitions
// for breadth-first search over press states.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/factory/machine"
)

// Sentinel errors for BFS execution.
var (
	// ErrUnreachable is returned when the search exhausts every state (or
	// the depth limit) without reaching the target.
	ErrUnreachable = errors.New("bfs: target unreachable")

	// ErrStateLimit is returned when more states than allowed were discovered.
	ErrStateLimit = errors.New("bfs: state limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Presses is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is discovered, with its depth.
	OnEnqueue func(state machine.LightVector, depth int)

	// OnVisit is called when a state is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(state machine.LightVector, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many presses.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxStates, if > 0, aborts with ErrStateLimit once more states than
	// this have been discovered.
	MaxStates int

	// FilterButton can skip pressing button b from state by returning false.
	FilterButton func(state machine.LightVector, b int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth or state limit
//   - no filtering (every button allowed)
//   - no-op hooks (OnEnqueue, OnVisit).
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnEnqueue:    func(machine.LightVector, int) {},
		OnVisit:      func(machine.LightVector, int) error { return nil },
		FilterButton: func(machine.LightVector, int) bool { return true },
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

// WithOnEnqueue registers a callback to run when a state is discovered.
func WithOnEnqueue(fn func(state machine.LightVector, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(state machine.LightVector, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterButton skips presses when fn returns false.
func WithFilterButton(fn func(state machine.LightVector, b int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterButton = fn
		}
	}
}

// WithMaxDepth stops the search after d presses.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithMaxStates bounds the number of discovered states.
//
//	n > 0: limit to n states
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// Result holds the outcome of a successful search:
//   - Presses: number of presses (the target's BFS depth).
//   - PerButton: how often each button is pressed on the found path.
//   - Visited: number of states dequeued.
type Result struct {
	Presses   int
	PerButton []int
	Visited   int
}
