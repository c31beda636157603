// SPDX-License-Identifier: MIT
// Package dfs provides helpers over vertex sequences: lookup, reversal,
// rotation, canonical cycle form (Booth's algorithm) and cycle validation.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

// ErrNotACycle is returned by ValidateCycle for sequences that are not a simple cycle of g.
var ErrNotACycle = errors.New("dfs: not a simple cycle")

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n).
func IndexOf(s []int, val int) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse(s []int) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// Rotate returns a new slice equal to s rotated left by k positions.
// k is taken modulo len(s); an empty s yields an empty slice.
func Rotate(s []int, k int) []int {
	n := len(s)
	out := make([]int, n)
	if n == 0 {
		return out
	}
	k = ((k % n) + n) % n
	copy(out, s[k:])
	copy(out[n-k:], s[:k])

	return out
}

// MinimalRotation implements Booth's algorithm and returns the
// lexicographically minimal rotation of s as a new slice.
// Time Complexity: O(n).
func MinimalRotation(s []int) []int {
	n := len(s)
	if n == 0 {
		return []int{}
	}
	doubled := make([]int, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)
	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // i == -1 here
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return Rotate(s, k)
}

// CanonicalCycle returns the smaller (lexicographically) of the minimal
// rotations of cycle and of its reversal. Two sequences describe the same
// cycle iff their canonical forms are equal.
func CanonicalCycle(cycle []int) []int {
	fwd := MinimalRotation(cycle)
	rev := MinimalRotation(Reverse(cycle))
	for i := range fwd {
		if fwd[i] != rev[i] {
			if fwd[i] < rev[i] {
				return fwd
			}
			return rev
		}
	}

	return fwd
}

// ValidateCycle checks that cycle is a simple cycle of g: at least three
// distinct vertices, consecutive ones adjacent, last adjacent to first.
func ValidateCycle(g *core.Graph, cycle []int) error {
	n := len(cycle)
	if n < minCycleLen {
		return fmt.Errorf("ValidateCycle: length %d < %d: %w", n, minCycleLen, ErrNotACycle)
	}
	seen := make(map[int]struct{}, n)
	for i, v := range cycle {
		if _, dup := seen[v]; dup {
			return fmt.Errorf("ValidateCycle: vertex %d repeated: %w", v, ErrNotACycle)
		}
		seen[v] = struct{}{}
		next := cycle[(i+1)%n]
		if !g.HasEdge(v, next) {
			return fmt.Errorf("ValidateCycle: missing edge %d-%d: %w", v, next, ErrNotACycle)
		}
	}

	return nil
}
