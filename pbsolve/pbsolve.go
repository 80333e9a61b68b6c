// SPDX-License-Identifier: MIT
// Package pbsolve — pseudo-boolean formulation.
//
// Each button b gets K_b = bitlen(cap_b) boolean variables, where cap_b is
// the smallest target among the lights it touches; its press count is
// Σ_k 2^k·bit_{b,k}. Every light contributes one equality
//
//	Σ_{b touches i} Σ_k 2^k·bit_{b,k} = target_i
//
// and the objective is the same weighted sum over all bits. The problem is
// written in OPB form and handed to gophersat, whose Minimize returns the
// optimal cost or -1 when the constraints are unsatisfiable.

package pbsolve

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/factory/machine"
)

// formulation is the OPB text plus the variable layout needed to decode a
// model.
type formulation struct {
	opb   string
	first []int // first[b] = CNF index of button b's lowest bit (1-based)
	width []int // width[b] = number of bits of button b
	vars  int
}

// Solve returns the minimal press count and a press vector for target.
//
// Errors: ErrOptionViolation, machine validation sentinels, ErrTooLarge,
// ErrInfeasible.
func Solve(buttons []machine.Button, target machine.LightVector, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if err := machine.ValidateTarget(target); err != nil {
		return Result{}, fmt.Errorf("pbsolve: %w", err)
	}
	if err := machine.ValidateButtons(buttons, len(target)); err != nil {
		return Result{}, fmt.Errorf("pbsolve: %w", err)
	}
	if target.IsZero() {
		return Result{Presses: make([]int, len(buttons))}, nil
	}

	f, err := formulate(buttons, target, o.MaxVars)
	if err != nil {
		return Result{}, err
	}

	pb, err := solver.ParseOPB(strings.NewReader(f.opb))
	if err != nil {
		return Result{}, fmt.Errorf("pbsolve: parse formulation: %w", err)
	}
	s := solver.New(pb)
	cost := s.Minimize()
	if cost < 0 {
		return Result{}, fmt.Errorf("pbsolve: %s: %w", target, ErrInfeasible)
	}

	model := s.Model()
	presses := make([]int, len(buttons))
	for b := range buttons {
		for k := 0; k < f.width[b]; k++ {
			if model[f.first[b]+k-1] {
				presses[b] += 1 << uint(k)
			}
		}
	}

	return Result{Total: cost, Presses: presses, Vars: f.vars}, nil
}

// formulate writes the OPB problem for a nonzero target.
func formulate(buttons []machine.Button, target machine.LightVector, maxVars int) (*formulation, error) {
	f := &formulation{
		first: make([]int, len(buttons)),
		width: make([]int, len(buttons)),
	}
	touching := make([][]int, len(target))
	next := 1
	for b, btn := range buttons {
		cp := -1
		for _, i := range btn {
			touching[i] = append(touching[i], b)
			if cp < 0 || target[i] < cp {
				cp = target[i]
			}
		}
		if cp < 0 {
			cp = 0
		}
		f.first[b] = next
		f.width[b] = bits.Len(uint(cp))
		next += f.width[b]
	}
	f.vars = next - 1
	if f.vars > maxVars {
		return nil, fmt.Errorf("pbsolve: %d variables, max %d: %w", f.vars, maxVars, ErrTooLarge)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "* #variable= %d #constraint= %d\n", f.vars, len(target))
	sb.WriteString("min:")
	for b := range buttons {
		f.writeTerms(&sb, b)
	}
	sb.WriteString(" ;\n")

	for i, t := range target {
		terms := 0
		for _, b := range touching[i] {
			terms += f.width[b]
		}
		if terms == 0 {
			if t != 0 {
				return nil, fmt.Errorf("pbsolve: light %d wants %d but no button can reach it: %w", i, t, ErrInfeasible)
			}
			continue
		}
		for _, b := range touching[i] {
			f.writeTerms(&sb, b)
		}
		fmt.Fprintf(&sb, " = %d ;\n", t)
	}
	f.opb = sb.String()

	return f, nil
}

// writeTerms appends " 2^k x<first+k>" for every bit of button b.
func (f *formulation) writeTerms(sb *strings.Builder, b int) {
	for k := 0; k < f.width[b]; k++ {
		fmt.Fprintf(sb, " %d x%d", 1<<uint(k), f.first[b]+k)
	}
}
