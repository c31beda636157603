// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/planarity/core"
)

// BenchmarkAddEdge measures edge insertion into a growing star.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(-1, i)
	}
}

// BenchmarkClone measures deep copies of a 1000-vertex ladder.
func BenchmarkClone(b *testing.B) {
	const n = 1000
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddEdge(i, i+1)
		_ = g.AddEdge(i, i+n+1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
