// SPDX-License-Identifier: MIT

// Package parity solves the minimum-presses problem by parity bifurcation
// and answers the light-diagram problem from the same subset table.
//
// Usage:
//
//	t, err := parity.NewTable(m.Buttons(), m.Lights())
//	if err != nil { ... }
//	res, err := t.NewSolver().Solve(m.Target())
//	if errors.Is(err, parity.ErrUnreachable) { ... }
//
//	s, err := t.MinToggle(m.Diagram()) // s.Size presses
//
// The table enumerates 2^B subsets, so NewTable refuses machines with more
// than DefaultMaxButtons buttons unless WithMaxButtons raises the limit.
// Solving never overflows: intermediate costs are bounded by the target's
// sum.
package parity
