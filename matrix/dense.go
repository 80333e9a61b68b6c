// SPDX-License-Identifier: MIT
// Package matrix provides the exact integer primitives behind the
// row-reduction solver.
// IntDense is a concrete, row-major integer matrix storing elements in a flat
// slice for cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with IntDense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("IntDense.%s(%d,%d): %w", method, row, col, err)
}

// IntDense is a row-major matrix of int values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type IntDense struct {
	r, c int   // number of rows and columns
	data []int // flat backing storage, length == r*c
}

// NewIntDense creates an r×c IntDense initialized to zeros.
// A matrix with zero rows is allowed (a machine with no lights); it must
// still have at least one column.
// Complexity: O(r*c) time and memory.
func NewIntDense(rows, cols int) (*IntDense, error) {
	// Validate dimensions
	if rows < 0 || cols <= 0 {
		return nil, fmt.Errorf("NewIntDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &IntDense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// NewIntDenseFrom copies a rectangular [][]int into a new IntDense.
// Every row must have the same, positive length.
func NewIntDenseFrom(rows [][]int) (*IntDense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewIntDenseFrom: %w", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m, err := NewIntDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewIntDenseFrom: row %d has %d cols, want %d: %w", i, len(row), cols, ErrInvalidDimensions)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *IntDense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *IntDense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *IntDense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *IntDense) At(row, col int) (int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *IntDense) Set(row, col int, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *IntDense) Row(i int) []int {
	if i < 0 || i >= m.r {
		return nil
	}

	return append([]int(nil), m.row(i)...)
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *IntDense) Clone() *IntDense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &IntDense{r: m.r, c: m.c, data: cp}
}

// row returns the backing slice of row i (no bounds check, aliases storage).
func (m *IntDense) row(i int) []int { return m.data[i*m.c : (i+1)*m.c] }

// at is the unchecked accessor used by kernels after validation.
func (m *IntDense) at(i, j int) int { return m.data[i*m.c+j] }

// swapRows exchanges rows i and j in place.
func (m *IntDense) swapRows(i, j int) {
	if i == j {
		return
	}
	ri, rj := m.row(i), m.row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *IntDense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", m.at(i, j))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
