// SPDX-License-Identifier: MIT
// Package: mazenav/mazegen
//
// types.go - the Algorithm enum and sentinel errors.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Option constructors panic on programmer error; Generate and
//     ParseAlgorithm return errors for data problems.

package mazegen

import (
	"errors"
	"fmt"
	"strings"
)

// Algorithm selects the carving strategy used by Generate.
type Algorithm uint8

const (
	// Wilson carves with loop-erased random walks. It samples uniformly
	// from all spanning trees, so mazes show no directional bias.
	Wilson Algorithm = iota
	// Backtracker carves with an iterative depth-first walk. It produces
	// long, winding corridors with few junctions.
	Backtracker
	// Kruskal carves by uniting cell components over a shuffled wall
	// list. It produces many short dead ends.
	Kruskal
)

// ErrUnknownAlgorithm indicates an algorithm name or value outside the
// declared set.
// Usage: if errors.Is(err, ErrUnknownAlgorithm) { /* list valid names */ }.
var ErrUnknownAlgorithm = errors.New("mazegen: unknown algorithm")

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Wilson:
		return "Wilson"
	case Backtracker:
		return "Backtracker"
	case Kruskal:
		return "Kruskal"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm maps a case-insensitive algorithm name to its value.
// Returns ErrUnknownAlgorithm for any other name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "wilson":
		return Wilson, nil
	case "backtracker":
		return Backtracker, nil
	case "kruskal":
		return Kruskal, nil
	default:
		return 0, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
	}
}
