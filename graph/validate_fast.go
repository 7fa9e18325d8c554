//go:build mazefast

package graph

// strictValidation is compiled out under the mazefast build tag;
// NewNodeIndex accepts its input unchecked.
const strictValidation = false
