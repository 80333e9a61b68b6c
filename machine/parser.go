// SPDX-License-Identifier: MIT

package machine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads one machine per non-blank line:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// The bracketed diagram is optional. Errors wrap ErrSyntax (or a
// validation sentinel) with the 1-based line number.
func Parse(r io.Reader) ([]*Machine, error) {
	var (
		out  []*Machine
		line int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		m, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("machine: reading input: %w", err)
	}

	return out, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]*Machine, error) {
	return Parse(strings.NewReader(s))
}

// ParseLine parses a single machine record.
func ParseLine(text string) (*Machine, error) {
	c := &cursor{s: strings.TrimSpace(text)}

	var diagram Diagram
	c.skipSpace()
	if c.peek() == '[' {
		d, err := c.diagram()
		if err != nil {
			return nil, err
		}
		diagram = d
	}

	var buttons []Button
	for {
		c.skipSpace()
		if c.peek() != '(' {
			break
		}
		nums, err := c.list('(', ')')
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, Button(nums))
	}

	c.skipSpace()
	if c.peek() != '{' {
		return nil, c.errorf("expected '{' target")
	}
	target, err := c.list('{', '}')
	if err != nil {
		return nil, err
	}
	c.skipSpace()
	if !c.done() {
		return nil, c.errorf("unexpected trailing input %q", c.s[c.pos:])
	}

	return NewWithDiagram(diagram, buttons, LightVector(target))
}

// cursor is a single-pass scanner over one record.
type cursor struct {
	s   string
	pos int
}

func (c *cursor) done() bool { return c.pos >= len(c.s) }

func (c *cursor) peek() byte {
	if c.done() {
		return 0
	}

	return c.s[c.pos]
}

func (c *cursor) skipSpace() {
	for !c.done() && (c.s[c.pos] == ' ' || c.s[c.pos] == '\t') {
		c.pos++
	}
}

func (c *cursor) errorf(format string, args ...any) error {
	return fmt.Errorf("col %d: %s: %w", c.pos+1, fmt.Sprintf(format, args...), ErrSyntax)
}

// diagram consumes "[" {'.'|'#'}+ "]".
func (c *cursor) diagram() (Diagram, error) {
	c.pos++ // '['
	var d Diagram
	for !c.done() && c.peek() != ']' {
		switch c.peek() {
		case '.':
			d = append(d, false)
		case '#':
			d = append(d, true)
		default:
			return nil, c.errorf("unexpected %q in diagram", c.peek())
		}
		c.pos++
	}
	if c.done() {
		return nil, c.errorf("unterminated diagram")
	}
	c.pos++ // ']'
	if len(d) == 0 {
		return nil, c.errorf("empty diagram")
	}

	return d, nil
}

// list consumes open number {"," number} shut.
func (c *cursor) list(open, shut byte) ([]int, error) {
	if c.peek() != open {
		return nil, c.errorf("expected %q", open)
	}
	c.pos++
	var nums []int
	for {
		start := c.pos
		for !c.done() && c.s[c.pos] >= '0' && c.s[c.pos] <= '9' {
			c.pos++
		}
		if start == c.pos {
			return nil, c.errorf("expected number")
		}
		n, err := strconv.Atoi(c.s[start:c.pos])
		if err != nil {
			return nil, c.errorf("bad number %q", c.s[start:c.pos])
		}
		nums = append(nums, n)
		switch c.peek() {
		case ',':
			c.pos++
		case shut:
			c.pos++
			return nums, nil
		default:
			return nil, c.errorf("expected ',' or %q", shut)
		}
	}
}
