package graph

// NodeIndex identifies one node of the graph variant G. The type parameter
// is a compile-time tag only: it occupies no storage, and a NodeIndex is
// exactly one IndexValue wide. Equality (==) and Compare look at the raw
// value alone; cross-variant comparison does not type-check, which is the
// point of the tag.
type NodeIndex[G Variant] struct {
	value IndexValue
}

// NewNodeIndex validates value against the variant's MaxNodeIndex and
// wraps it. Returns ErrOutOfRange when value is negative or past the
// maximum; the check is skipped under the mazefast build tag.
// Complexity: O(1).
func NewNodeIndex[G Variant](value IndexValue) (NodeIndex[G], error) {
	if strictValidation {
		var g G
		if value < 0 || value > g.MaxNodeIndex() {
			return NodeIndex[G]{}, ErrOutOfRange
		}
	}

	return NodeIndex[G]{value: value}, nil
}

// Value returns the raw index.
// Complexity: O(1).
func (n NodeIndex[G]) Value() IndexValue {
	return n.value
}

// Compare orders two indices of the same variant: -1 if n precedes o,
// 0 if equal, +1 otherwise.
// Complexity: O(1).
func (n NodeIndex[G]) Compare(o NodeIndex[G]) int {
	switch {
	case n.value < o.value:
		return -1
	case n.value > o.value:
		return 1
	default:
		return 0
	}
}
