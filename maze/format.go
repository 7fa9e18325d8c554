package maze

import (
	"fmt"
	"strings"
)

// candidateWidths are the maze widths the text format may encode, tried in
// descending order during width inference. 32, 16 and 8 are the deployable
// geometries; 9 and 4 appear in classic contest fixtures and test data.
var candidateWidths = [...]int{32, 16, 9, 8, 4}

// textLen returns the exact byte length of a width-w maze text: 2w+1 lines
// of 4w+2 bytes each, trailing newlines included.
func textLen(w int) int {
	return (4*w + 2) * (2*w + 1)
}

// byteAt returns s[i], or 0 when i is past the end of s. Short or ragged
// lines in hand-written fixtures read as "no wall here".
func byteAt(s string, i int) byte {
	if i >= len(s) {
		return 0
	}

	return s[i]
}

// Load parses a textual maze and returns it with walls applied on top of a
// fresh enclosure. The width is inferred from the exact byte length of s
// (trailing newline included); candidate widths are tried largest first.
//
// Text rows map top-down onto Y counting down from the inferred width-1.
// Wall lines contribute north walls ('-' at column 2+4x); corridor lines
// contribute west and east walls ('|' at columns 4x and 4x+4) and the
// start/goal markers ('S'/'G' at column 4x+2). Every wall is applied
// through SetWall, so a loaded maze satisfies the same invariants as a
// hand-built one. Without markers, Start defaults to (0,0) and Goal to the
// center cell (Width/2-1, Width/2-1).
//
// Load panics when the length matches no candidate width or the inferred
// width exceeds the compiled Width: the text targets a different build, and
// no in-process recovery is possible.
// Complexity: O(Width²).
func Load(s string) *Maze {
	m := New(
		CoordXY{X: 0, Y: 0},
		CoordXY{X: Width/2 - 1, Y: Width/2 - 1},
	)

	width := 0
	for _, w := range candidateWidths {
		if len(s) == textLen(w) {
			width = w
			break
		}
	}
	if width == 0 {
		panic(fmt.Sprintf("maze: text length %d matches no supported width", len(s)))
	}
	if width > Width {
		panic(fmt.Sprintf("maze: loaded width %d exceeds compiled width %d", width, Width))
	}

	for lineNo, line := range strings.Split(s, "\n") {
		y := Coord1D(width - 1 - lineNo/2)
		if lineNo%2 == 0 {
			// Wall line: north walls of row y.
			for x := 0; x < width; x++ {
				if byteAt(line, 2+4*x) == '-' {
					m.SetWall(CoordXY{X: Coord1D(x), Y: y}, North, true)
				}
			}
		} else {
			// Corridor line: west/east walls and markers of row y.
			for x := 0; x < width; x++ {
				c := CoordXY{X: Coord1D(x), Y: y}
				if byteAt(line, 4*x) == '|' {
					m.SetWall(c, West, true)
				}
				switch byteAt(line, 4*x+2) {
				case 'S':
					m.Start = c
				case 'G':
					m.Goal = c
				}
				if byteAt(line, 4*x+4) == '|' {
					m.SetWall(c, East, true)
				}
			}
			if y == 0 {
				break
			}
		}
	}

	return m
}

// String renders the maze in the textual format Load parses, top row
// first. The output is always exactly (4·Width+2)·(2·Width+1) bytes, and
// reloading it reproduces the same wall, start and goal state.
// Complexity: O(Width²).
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow(textLen(Width))
	for y := Width - 1; y >= 0; y-- {
		for x := 0; x < Width; x++ {
			if m.cells[x+y*Width].Wall(North) {
				b.WriteString("+---")
			} else {
				b.WriteString("+   ")
			}
		}
		b.WriteString("+\n")
		for x := 0; x < Width; x++ {
			c := CoordXY{X: Coord1D(x), Y: Coord1D(y)}
			mark := byte(' ')
			switch {
			case m.Start == c:
				mark = 'S'
			case m.Goal == c:
				mark = 'G'
			}
			if m.cells[x+y*Width].Wall(West) {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			b.WriteByte(' ')
			b.WriteByte(mark)
			b.WriteByte(' ')
		}
		if m.cells[Width-1+y*Width].Wall(East) {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	for x := 0; x < Width; x++ {
		if m.cells[x].Wall(South) {
			b.WriteString("+---")
		} else {
			b.WriteString("+   ")
		}
	}
	b.WriteString("+\n")

	return b.String()
}
