// Package factory finds the fewest button presses that drive a bank of
// joltage counters to exact targets.
//
// 🚀 What is factory?
//
//	A small, dependency-light toolkit for the "factory machines" puzzle:
//		• machine/: puzzle model and line-format parser
//		• matrix/: fraction-free integer row reduction (checked arithmetic)
//		• freevar/: branch-and-bound search over free columns
//		• parity/: memoized parity-halving (bifurcation) engine
//		• bfs/: unit-press breadth-first baseline with hooks
//		• pbsolve/: pseudo-boolean formulation solved by gophersat
//		• presses/: strategy facade, verification, whole-puzzle summary
//		• config/: YAML / JSONC configuration
//		• report/: text, JSON and CBOR summaries
//		• cmd/factory: command-line entry point
//
// ✨ Guarantees
//
//   - Every reported press vector is re-applied and checked against the target.
//   - Unreachable targets are results (Feasible == false), never errors.
//   - Arithmetic overflow is detected and surfaced, never wrapped silently.
//
// Quick example:
//
//	ms, _ := machine.ParseString("[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}\n")
//	sum, _ := presses.SolveAll(ms, presses.WithLights(true))
//	fmt.Println(sum.Total, sum.LightsTotal) // 10 2
//
// See each subpackage for details.
package factory
