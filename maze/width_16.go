//go:build !maze8 && !maze32

package maze

// Width is the compiled grid size: 16 cells per side unless the maze8 or
// maze32 build tag selects another geometry.
const Width = 16
