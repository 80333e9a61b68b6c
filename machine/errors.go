// SPDX-License-Identifier: MIT

package machine

import "errors"

// Every message is prefixed with "machine: ..." so wrapped errors stay
// greppable. Callers match with errors.Is; constructors wrap with the
// offending button, light, or line for context.
var (
	// ErrInvalidButtonIndex is returned when a button references a light
	// outside [0, L).
	ErrInvalidButtonIndex = errors.New("machine: button index out of range")

	// ErrDuplicateIndex is returned when a button lists the same light twice.
	ErrDuplicateIndex = errors.New("machine: duplicate light index in button")

	// ErrNegativeTarget is returned when a target entry is below zero.
	ErrNegativeTarget = errors.New("machine: negative target value")

	// ErrDiagramMismatch is returned when the light diagram length differs
	// from the target length.
	ErrDiagramMismatch = errors.New("machine: diagram length does not match target")

	// ErrTooManyLights is returned when a vector is too long to be packed
	// into a ParityClass.
	ErrTooManyLights = errors.New("machine: too many lights for a parity class")

	// ErrPressLength is returned by Apply when the press vector length
	// differs from the number of buttons.
	ErrPressLength = errors.New("machine: press vector length does not match buttons")

	// ErrSyntax is returned by the parser on malformed input.
	ErrSyntax = errors.New("machine: syntax error")
)
