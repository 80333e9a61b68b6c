// SPDX-License-Identifier: MIT

// Package presses is the entry point for solving factory machines.
//
// It picks an engine (Strategy), runs it, verifies the press vector against
// the machine, and aggregates whole puzzles:
//
//	ms, _ := machine.Parse(r)
//	sum, err := presses.SolveAll(ms,
//		presses.WithStrategy(presses.Auto),
//		presses.WithLights(true),
//		presses.WithLogger(logger),
//	)
//	fmt.Println(sum.Total, sum.LightsTotal)
//
// Strategies:
//
//   - Auto: Reduction, with Bifurcation as the fallback on overflow.
//   - Reduction: matrix.Reduce then freevar.Search.
//   - Bifurcation: parity.Solver.
//   - BreadthFirst: bfs.Presses (small targets only).
//   - PseudoBoolean: pbsolve.Solve.
//
// SolveLights answers come from parity.Table.MinToggle and carry the
// MinToggle label, which Solve does not accept.
//
// An unreachable target is reported as Result.Feasible == false, never as
// an error. Engines never log; the facade logs one debug record per machine
// and an info record per SolveAll through the injected *slog.Logger.
package presses
