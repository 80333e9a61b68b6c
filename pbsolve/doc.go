// SPDX-License-Identifier: MIT

// Package pbsolve solves the minimum-presses problem with the gophersat
// pseudo-boolean optimizer. Press counts are binary-expanded into boolean
// variables so that the light equalities and the objective become linear
// pseudo-boolean constraints. It is an independent engine, used as a
// cross-check for the reduction and bifurcation solvers and as a strategy of
// its own.
package pbsolve
