package freevar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factory/freevar"
	"github.com/katalvlaran/factory/machine"
	"github.com/katalvlaran/factory/matrix"
)

type sample struct {
	name    string
	buttons []machine.Button
	target  machine.LightVector
	want    int
}

var samples = []sample{
	{
		name:    "machine 1",
		buttons: []machine.Button{{3}, {1, 3}, {2}, {2, 3}, {0, 2}, {0, 1}},
		target:  machine.LightVector{3, 5, 4, 7},
		want:    10,
	},
	{
		name:    "machine 2",
		buttons: []machine.Button{{0, 2, 3, 4}, {2, 3}, {0, 4}, {0, 1, 2}, {1, 2, 3, 4}},
		target:  machine.LightVector{7, 5, 12, 7, 2},
		want:    12,
	},
	{
		name:    "machine 3",
		buttons: []machine.Button{{0, 1, 2, 3, 4}, {0, 3, 4}, {0, 1, 2, 4, 5}, {1, 2}},
		target:  machine.LightVector{10, 11, 11, 5, 10, 5},
		want:    11,
	},
}

func reduce(tb testing.TB, buttons []machine.Button, target machine.LightVector) *matrix.ReducedSystem {
	tb.Helper()
	aug, err := matrix.BuildAugmented(buttons, target)
	require.NoError(tb, err)
	sys, err := matrix.Reduce(aug)
	require.NoError(tb, err)

	return sys
}

// apply returns the light vector produced by pressing buttons per presses.
func apply(buttons []machine.Button, lights int, presses []int) machine.LightVector {
	out := make(machine.LightVector, lights)
	for b, btn := range buttons {
		for _, i := range btn {
			out[i] += presses[b]
		}
	}

	return out
}

// bruteForce enumerates every press vector within the per-button cap.
func bruteForce(buttons []machine.Button, target machine.LightVector) (int, bool) {
	caps := make([]int, len(buttons))
	for b, btn := range buttons {
		caps[b] = 0
		for k, i := range btn {
			if k == 0 || target[i] < caps[b] {
				caps[b] = target[i]
			}
		}
	}
	x := make([]int, len(buttons))
	best, found := 0, false
	var rec func(b, spent int)
	rec = func(b, spent int) {
		if found && spent >= best {
			return
		}
		if b == len(buttons) {
			if apply(buttons, len(target), x).Equal(target) {
				best, found = spent, true
			}
			return
		}
		for v := 0; v <= caps[b]; v++ {
			x[b] = v
			rec(b+1, spent+v)
		}
		x[b] = 0
	}
	rec(0, 0)

	return best, found
}

func TestSearch_Samples(t *testing.T) {
	t.Parallel()

	for _, bound := range []freevar.Bound{freevar.ResidualBound, freevar.CapBound} {
		for _, tc := range samples {
			tc, bound := tc, bound
			t.Run(bound.String()+"/"+tc.name, func(t *testing.T) {
				sol, err := freevar.Search(reduce(t, tc.buttons, tc.target), freevar.WithBound(bound))
				require.NoError(t, err)
				assert.Equal(t, tc.want, sol.Total)
				require.Len(t, sol.Presses, len(tc.buttons))

				sum := 0
				for _, p := range sol.Presses {
					require.GreaterOrEqual(t, p, 0)
					sum += p
				}
				assert.Equal(t, sol.Total, sum)
				assert.True(t, apply(tc.buttons, len(tc.target), sol.Presses).Equal(tc.target))
				assert.Positive(t, sol.Nodes)
			})
		}
	}
}

func TestSearch_SampleSum(t *testing.T) {
	total := 0
	for _, tc := range samples {
		sol, err := freevar.Search(reduce(t, tc.buttons, tc.target))
		require.NoError(t, err)
		total += sol.Total
	}
	assert.Equal(t, 33, total)
}

func TestSearch_Infeasible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		buttons []machine.Button
		target  machine.LightVector
	}{
		{"untouched light", []machine.Button{{0}}, machine.LightVector{2, 1}},
		{"negative pivot", []machine.Button{{0, 1}, {0}}, machine.LightVector{1, 2}},
		{"shared pair mismatch", []machine.Button{{0, 1}}, machine.LightVector{1, 2}},
		{"no buttons nonzero target", nil, machine.LightVector{0, 3}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := freevar.Search(reduce(t, tc.buttons, tc.target), freevar.WithBound(freevar.CapBound))
			require.ErrorIs(t, err, freevar.ErrInfeasible)
		})
	}
}

func TestSearch_ZeroTarget(t *testing.T) {
	sol, err := freevar.Search(reduce(t, nil, machine.LightVector{0, 0}))
	require.NoError(t, err)
	assert.Equal(t, 0, sol.Total)
	assert.Empty(t, sol.Presses)

	sol, err = freevar.Search(reduce(t, []machine.Button{{0}, {0, 1}}, machine.LightVector{0, 0}))
	require.NoError(t, err)
	assert.Equal(t, 0, sol.Total)
	assert.Equal(t, []int{0, 0}, sol.Presses)
}

func TestSearch_Options(t *testing.T) {
	sys := reduce(t, samples[0].buttons, samples[0].target)

	_, err := freevar.Search(nil)
	require.ErrorIs(t, err, freevar.ErrNilSystem)

	_, err = freevar.Search(sys, freevar.WithNodeLimit(-1))
	require.ErrorIs(t, err, freevar.ErrOptionViolation)

	_, err = freevar.Search(sys, freevar.WithBound(freevar.Bound(9)))
	require.ErrorIs(t, err, freevar.ErrOptionViolation)

	_, err = freevar.Search(sys, freevar.WithNodeLimit(1))
	require.ErrorIs(t, err, freevar.ErrNodeLimit)

	sol, err := freevar.Search(sys, freevar.WithNodeLimit(0), freevar.WithContext(nil))
	require.NoError(t, err)
	assert.Equal(t, 10, sol.Total)
}

func TestParseBound(t *testing.T) {
	b, err := freevar.ParseBound("CAP")
	require.NoError(t, err)
	assert.Equal(t, freevar.CapBound, b)

	b, err = freevar.ParseBound("")
	require.NoError(t, err)
	assert.Equal(t, freevar.CapBound, b)
	b, err = freevar.ParseBound("residual")
	require.NoError(t, err)
	assert.Equal(t, freevar.ResidualBound, b)

	_, err = freevar.ParseBound("tight")
	require.ErrorIs(t, err, freevar.ErrOptionViolation)
	assert.Equal(t, "Bound(7)", freevar.Bound(7).String())
}

// TestSearch_DefaultBoundKeepsOptimum covers a machine where a pivot row
// with a negative coefficient and a negative residual bounds a free variable
// from below. The residual heuristic cuts the optimum there; the default
// bound must not.
func TestSearch_DefaultBoundKeepsOptimum(t *testing.T) {
	buttons := []machine.Button{
		{1, 2, 3}, {2, 4, 5}, {0, 1, 4, 5}, {0, 4, 5}, {0, 1, 2, 3, 5},
		{0, 2, 3}, {1, 2, 4, 5}, {1, 4}, {0, 3, 4, 5},
	}
	target := machine.LightVector{40, 52, 47, 31, 63, 61}

	sol, err := freevar.Search(reduce(t, buttons, target))
	require.NoError(t, err)
	assert.Equal(t, 79, sol.Total)
	assert.True(t, apply(buttons, len(target), sol.Presses).Equal(target))

	heuristic, err := freevar.Search(reduce(t, buttons, target), freevar.WithBound(freevar.ResidualBound))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, heuristic.Total, sol.Total)
}

// TestSearch_CapBoundMatchesBruteForce checks the exhaustive bound against
// direct enumeration on small random machines, reachable or not.
func TestSearch_CapBoundMatchesBruteForce(t *testing.T) {
	g := lcg(99)
	for trial := 0; trial < 150; trial++ {
		lights := 1 + g.intn(4)
		nb := 1 + g.intn(5)
		buttons, target := randomMachine(&g, lights, nb, 4)
		if trial%5 == 0 {
			// Perturb so some targets are unreachable.
			target[g.intn(lights)]++
		}

		want, ok := bruteForce(buttons, target)
		sol, err := freevar.Search(reduce(t, buttons, target), freevar.WithBound(freevar.CapBound))
		if !ok {
			require.ErrorIs(t, err, freevar.ErrInfeasible, "trial %d: %v %v", trial, buttons, target)
			continue
		}
		require.NoError(t, err, "trial %d: %v %v", trial, buttons, target)
		require.Equal(t, want, sol.Total, "trial %d: %v %v", trial, buttons, target)
		require.True(t, apply(buttons, lights, sol.Presses).Equal(target))
	}
}

// lcg is a tiny deterministic generator.
type lcg uint64

func (g *lcg) intn(n int) int {
	*g = *g*6364136223846793005 + 1442695040888963407
	return int(uint64(*g>>33) % uint64(n))
}

func randomMachine(g *lcg, lights, buttons, maxPress int) ([]machine.Button, machine.LightVector) {
	bs := make([]machine.Button, buttons)
	for b := range bs {
		for i := 0; i < lights; i++ {
			if g.intn(2) == 1 {
				bs[b] = append(bs[b], i)
			}
		}
		if len(bs[b]) == 0 {
			bs[b] = machine.Button{g.intn(lights)}
		}
	}
	target := make(machine.LightVector, lights)
	for _, b := range bs {
		n := g.intn(maxPress + 1)
		for _, i := range b {
			target[i] += n
		}
	}

	return bs, target
}
