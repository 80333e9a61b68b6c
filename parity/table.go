// SPDX-License-Identifier: MIT
// Package parity: subset table.
//
// A Table enumerates all 2^B button subsets once. Subset increments are built
// incrementally from the subset without its lowest button, so the whole
// table costs O(2^B · L). Subsets are bucketed by the parity class of their
// increment; within a bucket they are ordered by size, then by mask.

package parity

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/katalvlaran/factory/machine"
)

// Table holds every button subset of one machine, bucketed by parity class.
type Table struct {
	lights  int
	buttons int
	buckets map[machine.ParityClass][]Subset
}

// NewTable enumerates the subsets of buttons over a machine with the given
// number of lights.
//
// Errors: ErrOptionViolation, ErrTooManyButtons, machine.ErrTooManyLights,
// machine.ErrInvalidButtonIndex, machine.ErrDuplicateIndex.
// Complexity: O(2^B · L) time and memory.
func NewTable(buttons []machine.Button, lights int, opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(buttons) > o.MaxButtons {
		return nil, fmt.Errorf("NewTable(%d buttons, max %d): %w", len(buttons), o.MaxButtons, ErrTooManyButtons)
	}
	if lights > machine.MaxParityLights {
		return nil, fmt.Errorf("NewTable(%d lights): %w", lights, machine.ErrTooManyLights)
	}
	if err := machine.ValidateButtons(buttons, lights); err != nil {
		return nil, fmt.Errorf("NewTable: %w", err)
	}

	n := 1 << uint(len(buttons))
	all := make([]Subset, n)
	all[0] = Subset{Increment: make(machine.LightVector, lights)}
	for mask := 1; mask < n; mask++ {
		low := bits.TrailingZeros(uint(mask))
		rest := all[mask&(mask-1)]
		inc := rest.Increment.Clone()
		for _, i := range buttons[low] {
			inc[i]++
		}
		all[mask] = Subset{Mask: uint32(mask), Size: rest.Size + 1, Increment: inc}
	}

	t := &Table{
		lights:  lights,
		buttons: len(buttons),
		buckets: make(map[machine.ParityClass][]Subset),
	}
	for _, s := range all {
		// Lights ≤ MaxParityLights was checked above.
		p, _ := s.Increment.Parity()
		t.buckets[p] = append(t.buckets[p], s)
	}
	for _, b := range t.buckets {
		sort.SliceStable(b, func(i, j int) bool { return b[i].Size < b[j].Size })
	}

	return t, nil
}

// Lights returns the number of lights the table was built for.
func (t *Table) Lights() int { return t.lights }

// NumButtons returns the number of buttons the table was built for.
func (t *Table) NumButtons() int { return t.buttons }

// Bucket returns the subsets whose increment has parity class p, smallest
// first. The returned slice must not be modified.
func (t *Table) Bucket(p machine.ParityClass) []Subset { return t.buckets[p] }

// PressVector expands s into a per-button 0/1 press vector.
func (t *Table) PressVector(s Subset) []int {
	out := make([]int, t.buttons)
	for b := range out {
		if s.Has(b) {
			out[b] = 1
		}
	}

	return out
}

// MinToggle returns the smallest subset whose increment leaves exactly the
// '#' lights of d odd.
//
// Errors: ErrLengthMismatch, ErrUnreachable.
func (t *Table) MinToggle(d machine.Diagram) (Subset, error) {
	if len(d) != t.lights {
		return Subset{}, fmt.Errorf("MinToggle(len=%d, lights=%d): %w", len(d), t.lights, ErrLengthMismatch)
	}
	p, err := d.Parity()
	if err != nil {
		return Subset{}, err
	}
	b := t.buckets[p]
	if len(b) == 0 {
		return Subset{}, fmt.Errorf("MinToggle(%s): %w", d, ErrUnreachable)
	}

	return b[0], nil
}
