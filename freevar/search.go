// SPDX-License-Identifier: MIT
// Package freevar — branch-and-bound over the free variables of a reduced
// system.
//
// Search enumerates assignments of the free (pivot-less) button columns
// depth-first in column order and solves every pivot row for its own
// button once all frees are fixed:
//
//  1. Residual of pivot row p = Target_p − Σ Coeffs_p[j]·free_j over the
//     frees assigned so far (kept incrementally).
//  2. The next free variable takes every value 0..bound, where bound comes
//     from the Bound policy.
//  3. At a leaf every residual must be a nonnegative multiple of its Lead;
//     the quotient is that pivot button's press count.
//  4. The minimum total over all leaves is kept. A branch is cut only when
//     the free presses already assigned reach the incumbent.
//
// Complexity:
//   - Worst case Π(bound_j + 1) leaves, each O(P).
//   - Memory: O(P·F) for the per-depth residual snapshots.

package freevar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/factory/matrix"
)

// ctxCheckMask sets how often the context is consulted (every 1024 nodes).
const ctxCheckMask = 1023

// bbEngine holds all search data and policies.
type bbEngine struct {
	// Configuration / policy
	opts Options

	// System data
	sys   *matrix.ReducedSystem
	nFree int

	// Current search state
	free  []int   // free[j] = value assigned to FreeColumns[j]
	resid []int   // per pivot row residual
	snap  [][]int // snap[d] = residuals on entry to depth d
	nodes int
	err   error // first abort reason (node limit or context)

	// Current best incumbent
	best        int
	bestPresses []int
	foundAny    bool
}

// Search returns the minimal-total nonnegative integer press vector for sys.
//
// Errors:
//   - ErrNilSystem for a nil system.
//   - ErrOptionViolation for invalid options.
//   - ErrInfeasible if no assignment satisfies every row.
//   - ErrNodeLimit or the context error if the search was aborted.
func Search(sys *matrix.ReducedSystem, opts ...Option) (Solution, error) {
	if sys == nil {
		return Solution{}, ErrNilSystem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Solution{}, o.err
	}
	if !sys.Consistent() {
		return Solution{}, ErrInfeasible
	}

	e := &bbEngine{
		opts:  o,
		sys:   sys,
		nFree: len(sys.FreeColumns),
		best:  math.MaxInt,
	}
	e.free = make([]int, e.nFree)
	e.resid = make([]int, len(sys.Pivots))
	for p, pv := range sys.Pivots {
		e.resid[p] = pv.Target
	}
	e.snap = make([][]int, e.nFree)
	for d := range e.snap {
		e.snap[d] = make([]int, len(sys.Pivots))
	}
	e.bestPresses = make([]int, sys.NumButtons)

	e.dfs(0, 0)

	if e.err != nil {
		return Solution{}, e.err
	}
	if !e.foundAny {
		return Solution{}, ErrInfeasible
	}

	return Solution{Total: e.best, Presses: e.bestPresses, Nodes: e.nodes}, nil
}

// abort reports whether the search must stop, recording the reason once.
func (e *bbEngine) abort() bool {
	if e.err != nil {
		return true
	}
	e.nodes++
	if e.opts.NodeLimit > 0 && e.nodes > e.opts.NodeLimit {
		e.err = fmt.Errorf("after %d nodes: %w", e.opts.NodeLimit, ErrNodeLimit)
		return true
	}
	if e.nodes&ctxCheckMask == 0 {
		if err := e.opts.Ctx.Err(); err != nil {
			e.err = err
			return true
		}
	}

	return false
}

// dfs assigns free variable d given that the frees before it sum to spent.
func (e *bbEngine) dfs(d, spent int) {
	if e.abort() {
		return
	}
	if spent >= e.best {
		return
	}
	if d == e.nFree {
		e.leaf(spent)
		return
	}

	bound := e.bound(d)
	copy(e.snap[d], e.resid)
	for v := 0; v <= bound; v++ {
		if spent+v >= e.best {
			break
		}
		e.free[d] = v
		e.dfs(d+1, spent+v)
		if e.err != nil {
			break
		}
		for p := range e.resid {
			e.resid[p] -= e.sys.Pivots[p].Coeffs[d]
		}
	}
	copy(e.resid, e.snap[d])
	e.free[d] = 0
}

// leaf solves every pivot row for its own button and records an improvement.
func (e *bbEngine) leaf(spent int) {
	total := spent
	for p, pv := range e.sys.Pivots {
		r := e.resid[p]
		if r < 0 || r%pv.Lead != 0 {
			return
		}
		total += r / pv.Lead
		if total >= e.best {
			return
		}
	}

	e.best = total
	e.foundAny = true
	for p, pv := range e.sys.Pivots {
		e.bestPresses[pv.Column] = e.resid[p] / pv.Lead
	}
	for j, col := range e.sys.FreeColumns {
		e.bestPresses[col] = e.free[j]
	}
}

// bound returns the largest value worth trying for free variable d.
func (e *bbEngine) bound(d int) int {
	if e.opts.Bound == CapBound {
		col := e.sys.FreeColumns[d]
		if col < len(e.sys.Caps) && e.sys.Caps[col] >= 0 {
			return e.sys.Caps[col]
		}
	}

	return e.residualBound(d)
}

// residualBound is the largest |residual| over pivot rows whose coefficient
// at free column d is nonzero and has the residual's sign; 0 if none.
func (e *bbEngine) residualBound(d int) int {
	best := 0
	for p, pv := range e.sys.Pivots {
		c, r := pv.Coeffs[d], e.resid[p]
		if c == 0 || r == 0 || (c > 0) != (r > 0) {
			continue
		}
		if r < 0 {
			r = -r
		}
		if r > best {
			best = r
		}
	}

	return best
}
