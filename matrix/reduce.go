// SPDX-License-Identifier: MIT
// Package matrix — fraction-free (Bareiss-style) integer row reduction.
//
// Reduce brings an augmented matrix to reduced echelon form without ever
// leaving the integers:
//  1. Scan button columns left to right with a row pointer h and a column
//     pointer k (the target column is never a pivot candidate).
//  2. If rows h.. have no nonzero entry in column k, k is a free column.
//  3. Otherwise swap the first such row to h; it becomes the pivot row.
//  4. Every other row i with a nonzero entry in column k is replaced by
//     row_i·(f/row_i[k]) − row_h·(f/row_h[k]) with f = lcm(|row_i[k]|, |row_h[k]|),
//     then sign-normalized (first nonzero positive) and divided by the gcd of
//     its entries.
//  5. Stop when rows or columns run out; unscanned columns are free.
//
// The gcd normalization after each elimination is what keeps coefficients
// bounded; all products are overflow-checked regardless.
//
// Complexity:
//   - Time O(min(L,B) · L · (B+1)) elimination steps, each O(B) with gcd.
//   - Space O(L·(B+1)) for the private working copy.

package matrix

// PivotRow is one solved row of a ReducedSystem:
//
//	Lead·x[Column] + Σ_j Coeffs[j]·x[FreeColumns[j]] = Target
type PivotRow struct {
	Column int   // pivot (button) column
	Lead   int   // leading coefficient, always > 0
	Coeffs []int // coefficients aligned with ReducedSystem.FreeColumns
	Target int   // residual target value
}

// ReducedSystem is the output of Reduce.
type ReducedSystem struct {
	// NumButtons is the number of button columns of the source matrix.
	NumButtons int

	// Pivots lists pivot rows in pivot order (ascending Column).
	Pivots []PivotRow

	// FreeColumns lists button columns without a pivot, ascending.
	FreeColumns []int

	// ZeroResiduals holds the target entry of every row whose button
	// columns are all zero. Any nonzero value makes the system infeasible.
	ZeroResiduals []int

	// Caps holds, per button column, an upper bound on that button's presses
	// derived from the source matrix: min over touched lights of
	// target/coefficient. -1 means no bound could be derived (a negative
	// entry in the column).
	Caps []int

	// Echelon is the fully reduced working matrix, kept for validation.
	Echelon *IntDense
}

// Reduce runs fraction-free elimination on a private copy of aug.
// Errors: ErrNilMatrix, ErrInvalidDimensions (no columns),
// ErrArithmeticOverflow — all wrapped with the operation tag.
func Reduce(aug *IntDense) (*ReducedSystem, error) {
	if aug == nil {
		return nil, matrixErrorf(opReduce, ErrNilMatrix)
	}
	if aug.c < 1 {
		return nil, matrixErrorf(opReduce, ErrInvalidDimensions)
	}

	m := aug.Clone()
	rows, n := m.r, m.c-1

	type pos struct{ row, col int }
	var (
		pivots []pos
		free   []int
		h, k   int
	)
	for h < rows && k < n {
		p := -1
		for i := h; i < rows; i++ {
			if m.at(i, k) != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			free = append(free, k)
			k++
			continue
		}
		m.swapRows(p, h)
		m.normalizeRow(h)
		for i := 0; i < rows; i++ {
			if i == h || m.at(i, k) == 0 {
				continue
			}
			if err := m.eliminate(i, h, k); err != nil {
				return nil, matrixErrorf(opReduce, err)
			}
		}
		pivots = append(pivots, pos{row: h, col: k})
		h++
		k++
	}
	for ; k < n; k++ {
		free = append(free, k)
	}

	sys := &ReducedSystem{
		NumButtons:  n,
		Pivots:      make([]PivotRow, len(pivots)),
		FreeColumns: free,
		Caps:        columnCaps(aug),
		Echelon:     m,
	}
	for idx, pv := range pivots {
		coeffs := make([]int, len(free))
		for j, fc := range free {
			coeffs[j] = m.at(pv.row, fc)
		}
		sys.Pivots[idx] = PivotRow{
			Column: pv.col,
			Lead:   m.at(pv.row, pv.col),
			Coeffs: coeffs,
			Target: m.at(pv.row, n),
		}
	}
	for i := len(pivots); i < rows; i++ {
		sys.ZeroResiduals = append(sys.ZeroResiduals, m.at(i, n))
	}

	return sys, nil
}

// eliminate zeroes column k of row i using pivot row h, then normalizes row i.
func (m *IntDense) eliminate(i, h, k int) error {
	ri, rh := m.row(i), m.row(h)
	f, ok := lcmChecked(ri[k], rh[k])
	if !ok {
		return ErrArithmeticOverflow
	}
	si, sh := f/ri[k], f/rh[k]
	for j := range ri {
		a, ok := mulChecked(ri[j], si)
		if !ok {
			return ErrArithmeticOverflow
		}
		b, ok := mulChecked(rh[j], sh)
		if !ok {
			return ErrArithmeticOverflow
		}
		if ri[j], ok = subChecked(a, b); !ok {
			return ErrArithmeticOverflow
		}
	}

	m.normalizeRow(i)

	return nil
}

// normalizeRow flips row i so its first nonzero entry is positive and
// divides it by the gcd of its entries. An all-zero row is left untouched.
func (m *IntDense) normalizeRow(i int) {
	r := m.row(i)
	sign, g := 0, 0
	for _, v := range r {
		if v == 0 {
			continue
		}
		if sign == 0 {
			sign = 1
			if v < 0 {
				sign = -1
			}
		}
		g = gcd(g, v)
	}
	if sign == 0 {
		return
	}
	for j := range r {
		r[j] = sign * r[j] / g
	}
}

// columnCaps derives per-column press bounds from the unreduced matrix.
func columnCaps(aug *IntDense) []int {
	n := aug.c - 1
	caps := make([]int, n)
	for k := 0; k < n; k++ {
		best := -1
		for i := 0; i < aug.r; i++ {
			a := aug.at(i, k)
			if a < 0 {
				best = -1
				break
			}
			if a == 0 {
				continue
			}
			c := aug.at(i, n) / a
			if best < 0 || c < best {
				best = c
			}
		}
		if best < 0 {
			// A column touching nothing is never worth pressing.
			best = 0
			for i := 0; i < aug.r; i++ {
				if aug.at(i, k) < 0 {
					best = -1
					break
				}
			}
		}
		caps[k] = best
	}

	return caps
}

// NumFree returns the number of free variables.
func (s *ReducedSystem) NumFree() int { return len(s.FreeColumns) }

// Consistent reports whether every all-zero row has a zero residual.
func (s *ReducedSystem) Consistent() bool {
	for _, r := range s.ZeroResiduals {
		if r != 0 {
			return false
		}
	}

	return true
}
