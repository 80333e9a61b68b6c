// SPDX-License-Identifier: MIT

// Package machine models button machines: a vector of counters (lights),
// a set of buttons that each increment a fixed subset of counters by one
// per press, the counter target, and an optional indicator diagram.
//
// It also parses the puzzle text format, one machine per line:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// A Machine is immutable once constructed; every accessor returns a copy,
// so solvers may freely mutate what they receive.
package machine
