// SPDX-License-Identifier: MIT
// Package matrix — augmented incidence builder.
//
// The augmented matrix of a machine has one row per light and one column per
// button, plus a trailing target column:
//
//	A[i][k] = 1 if button k touches light i, else 0   (k < numButtons)
//	A[i][numButtons] = target[i]
//
// Column order follows button order and row order follows light order, so the
// build is fully deterministic.
//
// Complexity:
//   - BuildAugmented: O(L·B + Σ|button|) time, O(L·(B+1)) space.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/factory/machine"
)

// incidenceMark is placed at (light, button) when the button touches the light.
const incidenceMark = 1

// Operation name constants for unified error wrapping.
const (
	opBuild  = "BuildAugmented"
	opReduce = "Reduce"
	opCheck  = "ValidateEchelon"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// BuildAugmented constructs the augmented incidence matrix for buttons and
// target.
// Stage 1 (Validate): nonnegative target, every button index in [0, L).
// Stage 2 (Prepare): allocate L×(B+1) zeros.
// Stage 3 (Execute): mark incidences and copy the target column.
// Errors: machine.ErrNegativeTarget, machine.ErrInvalidButtonIndex,
// machine.ErrDuplicateIndex, all wrapped with the operation tag.
func BuildAugmented(buttons []machine.Button, target machine.LightVector) (*IntDense, error) {
	if err := machine.ValidateTarget(target); err != nil {
		return nil, matrixErrorf(opBuild, err)
	}
	if err := machine.ValidateButtons(buttons, len(target)); err != nil {
		return nil, matrixErrorf(opBuild, err)
	}

	lights, cols := len(target), len(buttons)+1
	aug, err := NewIntDense(lights, cols)
	if err != nil {
		return nil, matrixErrorf(opBuild, err)
	}
	for k, b := range buttons {
		for _, i := range b {
			aug.data[i*cols+k] = incidenceMark
		}
	}
	for i, v := range target {
		aug.data[i*cols+cols-1] = v
	}

	return aug, nil
}

// FromMachine is BuildAugmented over a machine's buttons and target.
func FromMachine(m *machine.Machine) (*IntDense, error) {
	if m == nil {
		return nil, matrixErrorf(opBuild, ErrNilMatrix)
	}

	return BuildAugmented(m.Buttons(), m.Target())
}
