// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over press states: each edge
// presses one button once, so the depth at which the target is first seen
// is the minimal number of presses.
//
// States that exceed the target on any light are never enqueued; every
// counter only grows, so they cannot lead back to the target.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/factory/machine"
)

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	state machine.LightVector
	key   string
	depth int
}

// edge records how a state was first reached.
type edge struct {
	parent string
	button int
}

// walker encapsulates mutable BFS state.
type walker struct {
	buttons []machine.Button
	target  machine.LightVector
	goal    string
	opts    Options
	queue   []queueItem
	parent  map[string]edge
	visited int
}

// Presses runs breadth-first search from the all-zero state to target,
// applying any number of functional Options.
// Returns ErrOptionViolation for bad options, machine validation sentinels
// for malformed input, ErrStateLimit, ErrUnreachable, the context error, or
// any user-supplied hook error.
func Presses(buttons []machine.Button, target machine.LightVector, opts ...Option) (Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if err := machine.ValidateTarget(target); err != nil {
		return Result{}, fmt.Errorf("bfs: %w", err)
	}
	if err := machine.ValidateButtons(buttons, len(target)); err != nil {
		return Result{}, fmt.Errorf("bfs: %w", err)
	}

	w := &walker{
		buttons: buttons,
		target:  target,
		goal:    target.Key(),
		opts:    o,
		parent:  make(map[string]edge),
	}
	start := make(machine.LightVector, len(target))
	w.enqueue(start, start.Key(), 0, edge{button: -1})

	return w.loop()
}

// enqueue records how key was reached, calls OnEnqueue and adds it to the
// queue.
func (w *walker) enqueue(state machine.LightVector, key string, d int, from edge) {
	w.parent[key] = from
	w.opts.OnEnqueue(state, d)
	w.queue = append(w.queue, queueItem{state: state, key: key, depth: d})
}

// loop processes the queue until the goal is dequeued, the queue empties,
// an error occurs, or the context is cancelled.
func (w *walker) loop() (Result, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return Result{}, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.visited++
		if err := w.opts.OnVisit(item.state, item.depth); err != nil {
			return Result{}, fmt.Errorf("bfs: OnVisit error at %s: %w", item.state, err)
		}
		if item.key == w.goal {
			return Result{Presses: item.depth, PerButton: w.pathCounts(), Visited: w.visited}, nil
		}
		if err := w.expand(item); err != nil {
			return Result{}, err
		}
	}

	return Result{}, fmt.Errorf("bfs: %s after %d states: %w", w.target, w.visited, ErrUnreachable)
}

// expand presses every allowed button once from item and enqueues each
// unseen successor that stays within the target and depth limit.
func (w *walker) expand(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for b, btn := range w.buttons {
		if !w.opts.FilterButton(item.state, b) {
			continue
		}
		succ, ok := w.press(item.state, btn)
		if !ok {
			continue
		}
		key := succ.Key()
		if _, seen := w.parent[key]; seen {
			continue
		}
		if w.opts.MaxStates > 0 && len(w.parent) >= w.opts.MaxStates {
			return fmt.Errorf("bfs: %d states: %w", w.opts.MaxStates, ErrStateLimit)
		}
		w.enqueue(succ, key, next, edge{parent: item.key, button: b})
	}

	return nil
}

// press returns state with btn pressed once, or false if any touched light
// would exceed its target.
func (w *walker) press(state machine.LightVector, btn machine.Button) (machine.LightVector, bool) {
	out := state.Clone()
	for _, i := range btn {
		out[i]++
		if out[i] > w.target[i] {
			return nil, false
		}
	}

	return out, true
}

// pathCounts walks parent links back from the goal and counts presses per
// button.
func (w *walker) pathCounts() []int {
	counts := make([]int, len(w.buttons))
	for cur := w.parent[w.goal]; cur.button >= 0; cur = w.parent[cur.parent] {
		counts[cur.button]++
	}

	return counts
}
