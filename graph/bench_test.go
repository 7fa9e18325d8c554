package graph_test

import (
	"testing"

	"github.com/nanomouse/mazenav/graph"
	"github.com/nanomouse/mazenav/gridgraph"
)

// BenchmarkNewNodeIndex measures tagged-index construction, validation
// included when compiled in.
func BenchmarkNewNodeIndex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = graph.NewNodeIndex[gridgraph.Graph](graph.IndexValue(i % 32))
	}
}

// BenchmarkNewEdge measures edge pricing through zero-value dispatch.
func BenchmarkNewEdge(b *testing.B) {
	from, _ := graph.NewNodeIndex[gridgraph.Graph](0)
	to, _ := graph.NewNodeIndex[gridgraph.Graph](1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = graph.NewEdge(from, to)
	}
}

// BenchmarkRoute_Append measures the committed-walk hot path.
func BenchmarkRoute_Append(b *testing.B) {
	n, _ := graph.NewNodeIndex[gridgraph.Graph](1)
	r := graph.NewRoute[gridgraph.Graph]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Append(n, 1)
	}
}
