package freevar_test

import (
	"fmt"

	"github.com/katalvlaran/factory/freevar"
	"github.com/katalvlaran/factory/machine"
	"github.com/katalvlaran/factory/matrix"
)

// ExampleSearch solves the second sample machine, whose reduction leaves a
// single free button.
func ExampleSearch() {
	buttons := []machine.Button{{0, 2, 3, 4}, {2, 3}, {0, 4}, {0, 1, 2}, {1, 2, 3, 4}}
	target := machine.LightVector{7, 5, 12, 7, 2}

	aug, _ := matrix.BuildAugmented(buttons, target)
	sys, _ := matrix.Reduce(aug)

	sol, err := freevar.Search(sys, freevar.WithBound(freevar.CapBound))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("free columns:", sys.FreeColumns)
	fmt.Println("total:", sol.Total)
	// Output:
	// free columns: [2]
	// total: 12
}
