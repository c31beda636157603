// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_petersen.go: the Petersen graph.
//
// Layout: outer pentagon 0..4, spokes i-(i+5), inner pentagram
// (5+i)-(5+(i+2)%5).

package builder

import "github.com/katalvlaran/planarity/core"

const methodPetersen = "Petersen"

// Petersen returns a Constructor for the Petersen graph (10 vertices,
// 15 edges, 3-regular, nonplanar).
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i := 0; i < 5; i++ {
			if err := addEdge(g, cfg, methodPetersen, i, (i+1)%5); err != nil {
				return err
			}
		}
		for i := 0; i < 5; i++ {
			if err := addEdge(g, cfg, methodPetersen, i, i+5); err != nil {
				return err
			}
		}
		for i := 0; i < 5; i++ {
			if err := addEdge(g, cfg, methodPetersen, 5+i, 5+(i+2)%5); err != nil {
				return err
			}
		}

		return nil
	}
}
