package graph

// Route is an ordered node walk over variant G with its accumulated cost.
// A searcher appends nodes as it commits to them; the route never inspects
// the graph itself.
type Route[G Variant] struct {
	nodes []NodeIndex[G]
	cost  Cost
}

// NewRoute returns an empty route with capacity for every node of the
// variant, so appends along even an exhaustive walk never reallocate.
// Complexity: O(1) beyond the single allocation.
func NewRoute[G Variant]() Route[G] {
	var g G

	return Route[G]{nodes: make([]NodeIndex[G], 0, int(g.MaxNodeIndex())+1)}
}

// Append records n as the next node of the walk and adds cost to the
// route total.
// Complexity: amortized O(1).
func (r *Route[G]) Append(n NodeIndex[G], cost Cost) {
	r.nodes = append(r.nodes, n)
	r.cost += cost
}

// Nodes returns a copy of the walk so far, in append order.
// Complexity: O(len).
func (r *Route[G]) Nodes() []NodeIndex[G] {
	out := make([]NodeIndex[G], len(r.nodes))
	copy(out, r.nodes)

	return out
}

// Cost returns the accumulated traversal cost.
func (r *Route[G]) Cost() Cost {
	return r.cost
}

// Len returns the number of recorded nodes.
func (r *Route[G]) Len() int {
	return len(r.nodes)
}
