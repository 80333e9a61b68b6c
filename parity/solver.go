// SPDX-License-Identifier: MIT
// Package parity: bifurcation solver.
//
// Any press vector x splits as x = s + 2·y with s ∈ {0,1}^B. Pressing s
// must fix the parity of the target, and what remains is even, so
//
//	solve(0)     = 0
//	solve(state) = min over subsets S with parity(S) = parity(state) and
//	               inc(S) ≤ state of  |S| + 2·solve((state − inc(S)) / 2)
//
// The recursion is evaluated with an explicit stack of three frame kinds:
//
//	descend  enter a state: answer from the memo or expand its children
//	fold     fold one finished child into its parent's running minimum
//	reduce   settle a state to its minimum and memoize it
//
// so recursion depth never touches the goroutine stack. Each memo entry
// also keeps the minimizing subset, which is enough to rebuild the
// per-button press vector afterwards.
//
// Complexity: every distinct state is expanded once; a state's entries halve
// at each level, so the depth is O(log max(target)).

package parity

import (
	"fmt"

	"github.com/katalvlaran/factory/machine"
)

// entry is a settled memo value.
type entry struct {
	cost      int
	reachable bool
	subset    Subset // minimizing subset (valid when reachable and state ≠ 0)
	child     string // memo key of the halved remainder
}

// node is a state whose children are still being folded.
type node struct {
	key   string
	best  entry
	state machine.LightVector
}

type frameKind uint8

const (
	frameDescend frameKind = iota
	frameFold
	frameReduce
)

// frame is one unit of pending work on the explicit stack.
type frame struct {
	kind   frameKind
	state  machine.LightVector // descend
	parent *node               // fold, reduce
	subset Subset              // fold
	child  string              // fold
}

// Solver evaluates the bifurcation recursion over one Table. The memo is
// kept across Solve calls on the same Solver; it is never shared between
// Solvers.
type Solver struct {
	table *Table
	memo  map[string]entry
}

// NewSolver returns a Solver with an empty memo.
func (t *Table) NewSolver() *Solver {
	return &Solver{table: t, memo: make(map[string]entry)}
}

// MemoSize returns the number of settled states.
func (s *Solver) MemoSize() int { return len(s.memo) }

// Solve returns the minimal press count for target and a press vector
// achieving it.
//
// Errors: ErrLengthMismatch, machine.ErrNegativeTarget, ErrUnreachable.
func (s *Solver) Solve(target machine.LightVector) (Result, error) {
	if len(target) != s.table.lights {
		return Result{}, fmt.Errorf("Solve(len=%d, lights=%d): %w", len(target), s.table.lights, ErrLengthMismatch)
	}
	if err := machine.ValidateTarget(target); err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}

	root := s.run(target.Clone())
	if !root.reachable {
		return Result{}, fmt.Errorf("Solve(%s): %w", target, ErrUnreachable)
	}

	return Result{Total: root.cost, Presses: s.reconstruct(target)}, nil
}

// run drives the explicit stack from state and returns its settled entry.
func (s *Solver) run(state machine.LightVector) entry {
	var (
		ret   entry // result register: value of the most recently settled state
		stack = []frame{{kind: frameDescend, state: state}}
	)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch f.kind {
		case frameDescend:
			if f.state.IsZero() {
				ret = entry{cost: 0, reachable: true}
				continue
			}
			key := f.state.Key()
			if e, ok := s.memo[key]; ok {
				ret = e
				continue
			}
			stack = s.expand(stack, &node{key: key, state: f.state})

		case frameFold:
			if !ret.reachable {
				continue
			}
			cand := f.subset.Size + 2*ret.cost
			if b := &f.parent.best; !b.reachable || cand < b.cost {
				*b = entry{cost: cand, reachable: true, subset: f.subset, child: f.child}
			}

		case frameReduce:
			s.memo[f.parent.key] = f.parent.best
			ret = f.parent.best
		}
	}

	return ret
}

// expand pushes the reduce frame of n and one (fold, descend) pair per
// eligible subset. Pairs are pushed in reverse so children are visited in
// bucket order and the first minimal subset wins ties.
func (s *Solver) expand(stack []frame, n *node) []frame {
	stack = append(stack, frame{kind: frameReduce, parent: n})

	p, _ := n.state.Parity()
	bucket := s.table.buckets[p]
	for i := len(bucket) - 1; i >= 0; i-- {
		sub := bucket[i]
		child, ok := halve(n.state, sub.Increment)
		if !ok {
			continue
		}
		stack = append(stack,
			frame{kind: frameFold, parent: n, subset: sub, child: child.Key()},
			frame{kind: frameDescend, state: child},
		)
	}

	return stack
}

// halve returns (state − inc) / 2, or false if inc exceeds state anywhere.
// Parities already match, so the division is exact.
func halve(state, inc machine.LightVector) (machine.LightVector, bool) {
	out := make(machine.LightVector, len(state))
	for i := range state {
		d := state[i] - inc[i]
		if d < 0 {
			return nil, false
		}
		out[i] = d / 2
	}

	return out, true
}

// reconstruct follows the memoized subsets from target down to zero,
// accumulating x_b = s_b + 2·y_b.
func (s *Solver) reconstruct(target machine.LightVector) []int {
	presses := make([]int, s.table.buttons)
	weight := 1
	key := target.Key()
	for {
		e, ok := s.memo[key]
		if !ok {
			// Zero states are never memoized.
			break
		}
		for b := range presses {
			if e.subset.Has(b) {
				presses[b] += weight
			}
		}
		weight *= 2
		key = e.child
	}

	return presses
}
