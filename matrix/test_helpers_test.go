// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic machine fixtures for builder/reducer tests.
//   - Keep the sample data in one place so every test agrees on it.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factory/machine"
	"github.com/katalvlaran/factory/matrix"
)

// sampleButtons1 and sampleTarget1 are the first machine of the puzzle sample.
var (
	sampleButtons1 = []machine.Button{{3}, {1, 3}, {2}, {2, 3}, {0, 2}, {0, 1}}
	sampleTarget1  = machine.LightVector{3, 5, 4, 7}
)

// sampleButtons3 and sampleTarget3 are the third machine of the puzzle
// sample; its reduction leaves three all-zero rows.
var (
	sampleButtons3 = []machine.Button{{0, 1, 2, 3, 4}, {0, 3, 4}, {0, 1, 2, 4, 5}, {1, 2}}
	sampleTarget3  = machine.LightVector{10, 11, 11, 5, 10, 5}
)

// mustReduce builds and reduces the augmented matrix or fails the test.
func mustReduce(tb testing.TB, buttons []machine.Button, target machine.LightVector) *matrix.ReducedSystem {
	tb.Helper()
	aug, err := matrix.BuildAugmented(buttons, target)
	require.NoError(tb, err)
	sys, err := matrix.Reduce(aug)
	require.NoError(tb, err)

	return sys
}

// mustIntDense builds an IntDense from rows or fails the test.
func mustIntDense(tb testing.TB, rows [][]int) *matrix.IntDense {
	tb.Helper()
	m, err := matrix.NewIntDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// lcg is a tiny deterministic generator so fixtures do not depend on
// math/rand's algorithm across Go releases.
type lcg uint64

func (g *lcg) intn(n int) int {
	*g = *g*6364136223846793005 + 1442695040888963407
	return int(uint64(*g>>33) % uint64(n))
}

// randomMachine returns a machine with the given shape whose target is
// reachable by construction (it is A·x for a random press vector x).
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
