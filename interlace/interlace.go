// SPDX-License-Identifier: MIT
//
// File: interlace.go
// Role: Pairwise interlacement of pieces and the resulting conflict graph.
// Determinism:
//   - Pairs are visited as (i, j), i < j, in slice order; the cycle is walked
//     from index 0.

package interlace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

const (
	// AlternationThreshold is the number of switches between the attachments
	// of two pieces after which they interlace.
	AlternationThreshold = 3

	// SharedThreshold is the number of common attachments after which two
	// pieces interlace.
	SharedThreshold = 3
)

// ErrNilPiece is returned when the piece slice contains a nil graph.
var ErrNilPiece = errors.New("interlace: nil piece")

// side remembers which piece owned the last attachment seen on the walk.
type side struct {
	first, second bool
}

// Attachments returns the set of cycle vertices present in piece.
func Attachments(piece *core.Graph, cycle []int) map[int]struct{} {
	return core.VertexSet(core.Attachments(piece, cycle))
}

// Interlaced reports whether pieces a and b interlace with respect to cycle.
//
// Walking the cycle:
//   - a vertex in both sets counts as shared; it is an alternation unless it
//     is the first attachment seen, and afterwards the owner flips (or stays
//     "both" if it was already "both");
//   - a vertex in one set only is an alternation when the previous owner was
//     the other piece.
//
// The walk stops as soon as a threshold is met.
func Interlaced(a, b *core.Graph, cycle []int) bool {
	return interlacedSets(Attachments(a, cycle), Attachments(b, cycle), cycle)
}

func interlacedSets(a1, a2 map[int]struct{}, cycle []int) bool {
	var (
		last        side
		alternation int
		shared      int
	)
	for _, v := range cycle {
		_, in1 := a1[v]
		_, in2 := a2[v]
		switch {
		case in1 && in2:
			switch {
			case !last.first && !last.second:
				last = side{true, true}
			case last.first && last.second:
				alternation++
			case last.first:
				alternation++
				last = side{false, true}
			default:
				alternation++
				last = side{true, false}
			}
			shared++
		case in1:
			if last.second {
				alternation++
			}
			last = side{true, false}
		case in2:
			if last.first {
				alternation++
			}
			last = side{false, true}
		}
		if alternation >= AlternationThreshold || shared >= SharedThreshold {
			return true
		}
	}

	return false
}

// MakeInterlacementGraph returns the graph whose vertices are indices into
// pieces and whose edges join interlacing pairs. Pieces that interlace with
// nothing do not appear. The result is empty when no pair interlaces.
// Complexity: O(P² · L) for P pieces and a cycle of length L.
func MakeInterlacementGraph(pieces []*core.Graph, cycle []int) (*core.Graph, error) {
	attach := make([]map[int]struct{}, len(pieces))
	for i, p := range pieces {
		if p == nil {
			return nil, fmt.Errorf("MakeInterlacementGraph(%d): %w", i, ErrNilPiece)
		}
		attach[i] = Attachments(p, cycle)
	}

	out := core.NewGraph()
	for i := 0; i < len(pieces); i++ {
		for j := i + 1; j < len(pieces); j++ {
			if !interlacedSets(attach[i], attach[j], cycle) {
				continue
			}
			if err := out.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("MakeInterlacementGraph(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}
