//go:build maze8 && !maze32

package maze

// Width is the compiled grid size: 8 cells per side under the maze8 tag.
const Width = 8
