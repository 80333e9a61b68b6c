// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (wrapped with an operation tag)
// and tests check them via errors.Is. No kernel panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX) so the
// operation name leads the message; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> input domain (machine sentinels) -> arithmetic.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative,
	// or that a matrix has no columns.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil matrix or system was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrArithmeticOverflow is returned when fraction-free elimination would
	// exceed the range of int even after gcd normalization.
	ErrArithmeticOverflow = errors.New("matrix: integer overflow during elimination")

	// ErrNotEchelon is returned by ValidateEchelon when a reduced system
	// violates the pivot invariants.
	ErrNotEchelon = errors.New("matrix: system is not in echelon form")
)
