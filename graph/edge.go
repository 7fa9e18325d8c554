package graph

// Edge is a directed connection from one node of variant G to another,
// priced at construction. Edges are plain comparable values; two edges are
// equal iff endpoints and cost all match.
type Edge[G Variant] struct {
	from NodeIndex[G]
	to   NodeIndex[G]
	cost Cost
}

// NewEdge builds the edge from→to and prices it with the variant's exact
// Distance. The variant dispatches on its zero value, so no graph instance
// is required.
// Complexity: that of G's Distance, O(1) for grid variants.
func NewEdge[G Grapher[G]](from, to NodeIndex[G]) Edge[G] {
	var g G

	return Edge[G]{from: from, to: to, cost: g.Distance(from, to)}
}

// From returns the source node.
func (e Edge[G]) From() NodeIndex[G] {
	return e.from
}

// To returns the destination node.
func (e Edge[G]) To() NodeIndex[G] {
	return e.to
}

// Cost returns the traversal cost fixed at construction.
func (e Edge[G]) Cost() Cost {
	return e.cost
}
