// Package matrix_test provides benchmarks for the reduction kernel,
// using deterministic pseudo-random machines.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/factory/matrix"
)

// benchShapes are the (lights, buttons) shapes to benchmark.
var benchShapes = [][2]int{{4, 6}, {10, 13}, {16, 20}}

// sinks to defeat dead-code elimination
var (
	sinkSys *matrix.ReducedSystem
	sinkM   *matrix.IntDense
)

func BenchmarkBuildAugmented(b *testing.B) {
	b.ReportAllocs()
	for _, sh := range benchShapes {
		b.Run(fmt.Sprintf("L=%d,B=%d", sh[0], sh[1]), func(b *testing.B) {
			g := lcg(1337)
			bs, target := randomMachine(&g, sh[0], sh[1], 200)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.BuildAugmented(bs, target)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkReduce(b *testing.B) {
	b.ReportAllocs()
	for _, sh := range benchShapes {
		b.Run(fmt.Sprintf("L=%d,B=%d", sh[0], sh[1]), func(b *testing.B) {
			g := lcg(4242)
			bs, target := randomMachine(&g, sh[0], sh[1], 200)
			aug, err := matrix.BuildAugmented(bs, target)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sys, err := matrix.Reduce(aug)
				if err != nil {
					b.Fatal(err)
				}
				sinkSys = sys
			}
		})
	}
}
