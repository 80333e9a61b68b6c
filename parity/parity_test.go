package parity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factory/machine"
	"github.com/katalvlaran/factory/parity"
)

type sample struct {
	name    string
	diagram machine.Diagram
	buttons []machine.Button
	target  machine.LightVector
	presses int
	toggles int
}

func diagram(s string) machine.Diagram {
	d := make(machine.Diagram, len(s))
	for i := range s {
		d[i] = s[i] == '#'
	}

	return d
}

var samples = []sample{
	{
		name:    "machine 1",
		diagram: diagram(".##."),
		buttons: []machine.Button{{3}, {1, 3}, {2}, {2, 3}, {0, 2}, {0, 1}},
		target:  machine.LightVector{3, 5, 4, 7},
		presses: 10,
		toggles: 2,
	},
	{
		name:    "machine 2",
		diagram: diagram("...#."),
		buttons: []machine.Button{{0, 2, 3, 4}, {2, 3}, {0, 4}, {0, 1, 2}, {1, 2, 3, 4}},
		target:  machine.LightVector{7, 5, 12, 7, 2},
		presses: 12,
		toggles: 3,
	},
	{
		name:    "machine 3",
		diagram: diagram(".###.#"),
		buttons: []machine.Button{{0, 1, 2, 3, 4}, {0, 3, 4}, {0, 1, 2, 4, 5}, {1, 2}},
		target:  machine.LightVector{10, 11, 11, 5, 10, 5},
		presses: 11,
		toggles: 2,
	},
}

func apply(buttons []machine.Button, lights int, presses []int) machine.LightVector {
	out := make(machine.LightVector, lights)
	for b, btn := range buttons {
		for _, i := range btn {
			out[i] += presses[b]
		}
	}

	return out
}

func TestSolve_Samples(t *testing.T) {
	t.Parallel()

	total := 0
	for _, tc := range samples {
		table, err := parity.NewTable(tc.buttons, len(tc.target))
		require.NoError(t, err, tc.name)

		res, err := table.NewSolver().Solve(tc.target)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.presses, res.Total, tc.name)
		assert.True(t, apply(tc.buttons, len(tc.target), res.Presses).Equal(tc.target), tc.name)

		sum := 0
		for _, p := range res.Presses {
			sum += p
		}
		assert.Equal(t, res.Total, sum, tc.name)
		total += res.Total
	}
	assert.Equal(t, 33, total)
}

func TestMinToggle_Samples(t *testing.T) {
	total := 0
	for _, tc := range samples {
		table, err := parity.NewTable(tc.buttons, len(tc.target))
		require.NoError(t, err)

		s, err := table.MinToggle(tc.diagram)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.toggles, s.Size, tc.name)

		got, err := apply(tc.buttons, len(tc.target), table.PressVector(s)).Parity()
		require.NoError(t, err)
		want, err := tc.diagram.Parity()
		require.NoError(t, err)
		assert.Equal(t, want, got, tc.name)
		total += s.Size
	}
	assert.Equal(t, 7, total)
}

func TestSolve_Unreachable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		buttons []machine.Button
		target  machine.LightVector
	}{
		{"untouched light", []machine.Button{{0}}, machine.LightVector{2, 1}},
		{"pair mismatch", []machine.Button{{0, 1}}, machine.LightVector{1, 2}},
		{"no buttons", nil, machine.LightVector{4}},
		{"even but unreachable", []machine.Button{{0, 1}, {0}}, machine.LightVector{2, 4}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			table, err := parity.NewTable(tc.buttons, len(tc.target))
			require.NoError(t, err)
			_, err = table.NewSolver().Solve(tc.target)
			require.ErrorIs(t, err, parity.ErrUnreachable)
		})
	}
}

func TestSolve_ZeroAndMemoReuse(t *testing.T) {
	table, err := parity.NewTable(nil, 2)
	require.NoError(t, err)
	res, err := table.NewSolver().Solve(machine.LightVector{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Presses)

	tc := samples[0]
	table, err = parity.NewTable(tc.buttons, len(tc.target))
	require.NoError(t, err)
	solver := table.NewSolver()
	first, err := solver.Solve(tc.target)
	require.NoError(t, err)
	size := solver.MemoSize()
	assert.Positive(t, size)

	second, err := solver.Solve(tc.target)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, size, solver.MemoSize(), "second solve is answered from the memo")
}

func TestSolve_InputErrors(t *testing.T) {
	table, err := parity.NewTable([]machine.Button{{0}}, 1)
	require.NoError(t, err)
	solver := table.NewSolver()

	_, err = solver.Solve(machine.LightVector{1, 1})
	require.ErrorIs(t, err, parity.ErrLengthMismatch)
	_, err = solver.Solve(machine.LightVector{-1})
	require.ErrorIs(t, err, machine.ErrNegativeTarget)

	_, err = table.MinToggle(machine.Diagram{true, false})
	require.ErrorIs(t, err, parity.ErrLengthMismatch)

	table, err = parity.NewTable([]machine.Button{{0, 1}}, 2)
	require.NoError(t, err)
	_, err = table.MinToggle(machine.Diagram{true, false})
	require.ErrorIs(t, err, parity.ErrUnreachable)
}

func TestNewTable_Limits(t *testing.T) {
	many := make([]machine.Button, parity.DefaultMaxButtons+1)
	for i := range many {
		many[i] = machine.Button{0}
	}
	_, err := parity.NewTable(many, 1)
	require.ErrorIs(t, err, parity.ErrTooManyButtons)

	_, err = parity.NewTable(many[:3], 1, parity.WithMaxButtons(2))
	require.ErrorIs(t, err, parity.ErrTooManyButtons)

	_, err = parity.NewTable(many, 1, parity.WithMaxButtons(parity.HardMaxButtons+1))
	require.ErrorIs(t, err, parity.ErrOptionViolation)

	_, err = parity.NewTable([]machine.Button{{2}}, 2)
	require.ErrorIs(t, err, machine.ErrInvalidButtonIndex)

	_, err = parity.NewTable(nil, machine.MaxParityLights+1)
	require.ErrorIs(t, err, machine.ErrTooManyLights)
}

func TestTable_Buckets(t *testing.T) {
	table, err := parity.NewTable([]machine.Button{{0}, {1}, {0, 1}}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Lights())
	assert.Equal(t, 3, table.NumButtons())

	// Parity 0b11 is reached by {b2} (size 1) and {b0,b1} (size 2).
	b := table.Bucket(0b11)
	require.Len(t, b, 2)
	assert.Equal(t, 1, b[0].Size)
	assert.Equal(t, uint32(0b100), b[0].Mask)
	assert.Equal(t, []int{0, 0, 1}, table.PressVector(b[0]))

	// Parity 0 holds the empty subset and the full one ({0}+{1}+{0,1} = {2,2}).
	b = table.Bucket(0)
	require.Len(t, b, 2)
	assert.Equal(t, 0, b[0].Size)
	assert.Equal(t, machine.LightVector{2, 2}, b[1].Increment)
}
