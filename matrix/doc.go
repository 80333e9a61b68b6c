// SPDX-License-Identifier: MIT

// Package matrix offers the exact integer linear algebra behind the
// row-reduction solver.
//
// The matrix package provides:
//
//   - IntDense, a bounds-checked row-major integer matrix.
//   - BuildAugmented / FromMachine, the augmented 0/1 incidence matrix of a
//     machine (one row per light, one column per button, target column last).
//   - Reduce, fraction-free elimination to a ReducedSystem: pivot rows
//     expressed over the free (pivot-less) button columns.
//   - ValidateEchelon, the structural invariant check on a ReducedSystem.
//
// No intermediate value is ever fractional: rows are combined with
// lcm-derived integer factors and divided back down by their gcd after every
// step. Every multiplication is overflow-checked and reports
// ErrArithmeticOverflow rather than wrapping.
//
// Each call to Reduce works on its own copy; the caller's matrix is never
// mutated, so a failed reduction leaves no visible state behind.
package matrix
