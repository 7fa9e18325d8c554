//go:build !mazefast

package graph

// strictValidation enables range checks in NewNodeIndex. Build with
// -tags mazefast to compile them out together with the maze package's
// constructor checks.
const strictValidation = true
