//go:build maze32 && !maze8

package maze

// Width is the compiled grid size: 32 cells per side under the maze32 tag.
const Width = 32
