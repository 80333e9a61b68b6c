// SPDX-License-Identifier: MIT

package machine

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxParityLights is the longest vector that packs into a ParityClass.
const MaxParityLights = 64

// LightVector holds one nonnegative counter value per light.
type LightVector []int

// Clone returns an independent copy of v.
func (v LightVector) Clone() LightVector {
	return append(LightVector(nil), v...)
}

// IsZero reports whether every entry is zero (true for an empty vector).
func (v LightVector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether v and o have the same length and entries.
func (v LightVector) Equal(o LightVector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}

	return true
}

// Parity packs the low bit of every entry into a ParityClass: bit i is set
// iff v[i] is odd.
func (v LightVector) Parity() (ParityClass, error) {
	if len(v) > MaxParityLights {
		return 0, fmt.Errorf("Parity(len=%d): %w", len(v), ErrTooManyLights)
	}
	var p ParityClass
	for i, x := range v {
		if x&1 == 1 {
			p |= 1 << uint(i)
		}
	}

	return p, nil
}

// Key returns a compact string usable as a map key.
func (v LightVector) Key() string {
	var b strings.Builder
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}

	return b.String()
}

// String renders v in the puzzle's brace notation, e.g. {3,5,4,7}.
func (v LightVector) String() string {
	return "{" + v.Key() + "}"
}

// ParityClass is the mod-2 reduction of a LightVector packed as a bit mask.
type ParityClass uint64

// Button is a set of distinct light indices incremented by one per press.
type Button []int

// Clone returns an independent copy of b.
func (b Button) Clone() Button {
	return append(Button(nil), b...)
}

// String renders b in the puzzle's parenthesis notation, e.g. (1,3).
func (b Button) String() string {
	parts := make([]string, len(b))
	for i, x := range b {
		parts[i] = strconv.Itoa(x)
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// Diagram is the indicator pattern of a machine: true for '#', false for '.'.
type Diagram []bool

// Parity returns the ParityClass whose set bits are the '#' lights.
func (d Diagram) Parity() (ParityClass, error) {
	if len(d) > MaxParityLights {
		return 0, fmt.Errorf("Parity(len=%d): %w", len(d), ErrTooManyLights)
	}
	var p ParityClass
	for i, on := range d {
		if on {
			p |= 1 << uint(i)
		}
	}

	return p, nil
}

// String renders d in the puzzle's bracket notation, e.g. [.##.].
func (d Diagram) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, on := range d {
		if on {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}
	b.WriteByte(']')

	return b.String()
}
