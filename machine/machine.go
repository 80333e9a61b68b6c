// SPDX-License-Identifier: MIT

package machine

import (
	"fmt"
	"strings"
)

// Machine is an immutable set of buttons together with the counter target
// they must reach and, optionally, the light diagram.
// Construct with New or NewWithDiagram; accessors return copies.
type Machine struct {
	buttons []Button
	target  LightVector
	diagram Diagram
}

// New validates and copies buttons and target into a Machine.
// Errors: ErrNegativeTarget, ErrInvalidButtonIndex, ErrDuplicateIndex.
func New(buttons []Button, target LightVector) (*Machine, error) {
	return NewWithDiagram(nil, buttons, target)
}

// NewWithDiagram is New with a light diagram attached. A nil diagram means
// the machine has none; otherwise its length must match the target.
func NewWithDiagram(diagram Diagram, buttons []Button, target LightVector) (*Machine, error) {
	if err := ValidateTarget(target); err != nil {
		return nil, err
	}
	if err := ValidateButtons(buttons, len(target)); err != nil {
		return nil, err
	}
	if diagram != nil && len(diagram) != len(target) {
		return nil, fmt.Errorf("NewWithDiagram: diagram %d, target %d: %w",
			len(diagram), len(target), ErrDiagramMismatch)
	}

	m := &Machine{
		buttons: make([]Button, len(buttons)),
		target:  target.Clone(),
	}
	for i, b := range buttons {
		m.buttons[i] = b.Clone()
	}
	if diagram != nil {
		m.diagram = append(Diagram(nil), diagram...)
	}

	return m, nil
}

// ValidateTarget rejects negative entries.
func ValidateTarget(target LightVector) error {
	for i, x := range target {
		if x < 0 {
			return fmt.Errorf("light %d = %d: %w", i, x, ErrNegativeTarget)
		}
	}

	return nil
}

// ValidateButtons checks that every index of every button lies in
// [0, lights) and appears at most once within its button.
func ValidateButtons(buttons []Button, lights int) error {
	for bi, b := range buttons {
		seen := make(map[int]struct{}, len(b))
		for _, idx := range b {
			if idx < 0 || idx >= lights {
				return fmt.Errorf("button %d index %d (lights=%d): %w", bi, idx, lights, ErrInvalidButtonIndex)
			}
			if _, dup := seen[idx]; dup {
				return fmt.Errorf("button %d index %d: %w", bi, idx, ErrDuplicateIndex)
			}
			seen[idx] = struct{}{}
		}
	}

	return nil
}

// NumButtons returns the number of buttons.
func (m *Machine) NumButtons() int { return len(m.buttons) }

// Lights returns the number of lights L.
func (m *Machine) Lights() int { return len(m.target) }

// Button returns a copy of button i. It panics if i is out of range.
func (m *Machine) Button(i int) Button { return m.buttons[i].Clone() }

// Buttons returns a deep copy of all buttons.
func (m *Machine) Buttons() []Button {
	out := make([]Button, len(m.buttons))
	for i, b := range m.buttons {
		out[i] = b.Clone()
	}

	return out
}

// Target returns a copy of the counter target.
func (m *Machine) Target() LightVector { return m.target.Clone() }

// HasDiagram reports whether a light diagram was attached.
func (m *Machine) HasDiagram() bool { return m.diagram != nil }

// Diagram returns a copy of the light diagram, or nil.
func (m *Machine) Diagram() Diagram {
	if m.diagram == nil {
		return nil
	}

	return append(Diagram(nil), m.diagram...)
}

// Apply returns the counter vector reached after pressing button b
// presses[b] times, starting from zero.
func (m *Machine) Apply(presses []int) (LightVector, error) {
	if len(presses) != len(m.buttons) {
		return nil, fmt.Errorf("Apply: %d presses for %d buttons: %w", len(presses), len(m.buttons), ErrPressLength)
	}
	out := make(LightVector, len(m.target))
	for b, n := range presses {
		for _, idx := range m.buttons[b] {
			out[idx] += n
		}
	}

	return out, nil
}

// String renders the machine in the puzzle's input format.
func (m *Machine) String() string {
	var parts []string
	if m.diagram != nil {
		parts = append(parts, m.diagram.String())
	}
	for _, b := range m.buttons {
		parts = append(parts, b.String())
	}
	parts = append(parts, m.target.String())

	return strings.Join(parts, " ")
}
