// Package matrix_test contains unit tests for the IntDense implementation.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factory/matrix"
)

// TestNewIntDenseInvalidDimensions ensures that NewIntDense rejects bad shapes.
func TestNewIntDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewIntDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewIntDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// Zero rows is a valid machine without lights.
	m, err := matrix.NewIntDense(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
}

// TestIntDenseAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestIntDenseAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewIntDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

// TestIntDenseSetGetClone validates Set/At and that Clone is independent.
func TestIntDenseSetGetClone(t *testing.T) {
	m, err := matrix.NewIntDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7, v)

	c := m.Clone()
	require.NoError(t, c.Set(1, 2, 9))
	v, _ = m.At(1, 2)
	require.Equal(t, 7, v, "clone must not alias")
	require.Equal(t, []int{0, 0, 7}, m.Row(1))
	require.Nil(t, m.Row(5))
	require.Equal(t, "[0, 0, 0]\n[0, 0, 7]\n", m.String())
}

func TestNewIntDenseFrom_Ragged(t *testing.T) {
	_, err := matrix.NewIntDenseFrom([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewIntDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
