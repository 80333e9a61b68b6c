// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for structural checks on the reduction
//    output, so tests and callers assert the same invariants.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only the pivot set.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateEchelon checks the pivot invariants of a ReducedSystem:
//   - no two pivot rows share a pivot column, and columns ascend;
//   - every leading coefficient is positive;
//   - every row of the reduced matrix other than a pivot's own row is zero in
//     that pivot's column (in particular, later pivot rows are zero in all
//     earlier pivot columns);
//   - free columns and pivot columns partition the button columns.
//
// Errors: ErrNilMatrix, ErrNotEchelon (wrapped with the failing check).
// Complexity: O(P·L + B).
func ValidateEchelon(s *ReducedSystem) error {
	if s == nil || s.Echelon == nil {
		return validatorErrorf(opCheck, ErrNilMatrix)
	}
	seen := make(map[int]bool, s.NumButtons)
	prev := -1
	for p, pv := range s.Pivots {
		if pv.Column <= prev || seen[pv.Column] {
			return validatorErrorf(opCheck, fmt.Errorf("pivot %d column %d repeats or descends: %w", p, pv.Column, ErrNotEchelon))
		}
		if pv.Lead <= 0 {
			return validatorErrorf(opCheck, fmt.Errorf("pivot %d lead %d: %w", p, pv.Lead, ErrNotEchelon))
		}
		seen[pv.Column] = true
		prev = pv.Column
		for i := 0; i < s.Echelon.r; i++ {
			if i != p && s.Echelon.at(i, pv.Column) != 0 {
				return validatorErrorf(opCheck, fmt.Errorf("row %d nonzero in pivot column %d: %w", i, pv.Column, ErrNotEchelon))
			}
		}
	}
	for _, fc := range s.FreeColumns {
		if fc < 0 || fc >= s.NumButtons || seen[fc] {
			return validatorErrorf(opCheck, fmt.Errorf("free column %d: %w", fc, ErrNotEchelon))
		}
		seen[fc] = true
	}
	if len(seen) != s.NumButtons {
		return validatorErrorf(opCheck, fmt.Errorf("%d of %d columns classified: %w", len(seen), s.NumButtons, ErrNotEchelon))
	}

	return nil
}
