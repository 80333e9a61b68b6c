// SPDX-License-Identifier: MIT

// Package freevar finds the cheapest nonnegative integer solution of a
// matrix.ReducedSystem by branch-and-bound over its free variables.
//
// Once the free button columns are fixed, every pivot row determines its
// own button's press count, so the search space is the free variables
// alone. Two bound policies are available:
//
//   - CapBound (default): min target over the lights a button touches. No
//     optimal solution presses a button more often than that, so the search
//     is exhaustive.
//   - ResidualBound: a heuristic taken from the current residuals. It can
//     be faster but may miss the optimum, so it is opt-in only.
//
// Usage:
//
//	sys, _ := matrix.Reduce(aug)
//	sol, err := freevar.Search(sys)
//	if errors.Is(err, freevar.ErrInfeasible) {
//		// target unreachable
//	}
package freevar
