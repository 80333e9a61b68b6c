// SPDX-License-Identifier: MIT

// Package bfs provides a breadth-first baseline for the minimum-presses
// problem: the state graph has one vertex per light vector and one edge per
// single button press.
//
// What
//
//   - Explore states in non-decreasing press count from the all-zero vector.
//   - Returns a Result containing:
//   - Presses: the depth at which the target was first dequeued
//   - PerButton: press counts along the discovered path
//   - Visited: number of states dequeued
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a state is discovered)
//   - OnVisit   (when dequeued; may abort with an error)
//   - Allows filtering of individual presses via WithFilterButton.
//   - Honors MaxDepth (d>0) and MaxStates (n>0) limits.
//
// Why
//
//   - Obviously correct, so it serves as the cross-check for the reduction
//     and bifurcation engines on small inputs.
//
// Determinism
//
//	Buttons are tried in index order, so the visit sequence and the returned
//	press vector are fully reproducible.
//
// Complexity
//
//   - Time:   O(S · B · L) for S = Π(target_i + 1) reachable states at most
//   - Memory: O(S · L)
//
// Usage
//
//	res, err := bfs.Presses(buttons, target,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxStates(1_000_000),
//	)
//	if errors.Is(err, bfs.ErrUnreachable) { ... }
package bfs
