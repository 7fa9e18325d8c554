package maze_test

import (
	"fmt"

	"github.com/nanomouse/mazenav/maze"
)

// ExampleLoad parses a small contest fixture. The text encodes a 4×4 maze;
// it loads into the compiled geometry with the remaining cells untouched.
func ExampleLoad() {
	text := "+   +   +   +   +\n" +
		"|                \n" +
		"+   +   +   +   +\n" +
		"|                \n" +
		"+   +   +   +   +\n" +
		"|                \n" +
		"+---+---+   +   +\n" +
		"|       |        \n" +
		"+---+---+---+---+\n"

	m := maze.Load(text)
	fmt.Println(m.Wall(maze.CoordXY{X: 0, Y: 0}, maze.North))
	fmt.Println(m.Wall(maze.CoordXY{X: 1, Y: 0}, maze.East))
	fmt.Println(m.Wall(maze.CoordXY{X: 2, Y: 0}, maze.North))
	// Output:
	// true
	// true
	// false
}

// ExampleMaze_SetWall shows the shared-wall invariant: one call updates
// both cells that border the wall.
func ExampleMaze_SetWall() {
	m := maze.New(maze.CoordXY{X: 0, Y: 0}, maze.CoordXY{X: 7, Y: 7})

	here := maze.CoordXY{X: 3, Y: 3}
	m.SetWall(here, maze.North, true)

	above := maze.CoordXY{X: 3, Y: 4}
	fmt.Println(m.Wall(here, maze.North))
	fmt.Println(m.Wall(above, maze.South))
	// Output:
	// true
	// true
}

// ExampleMaze_String renders a maze to the textual format; the size is
// fixed by the compiled geometry.
func ExampleMaze_String() {
	m := maze.New(maze.CoordXY{X: 0, Y: 0}, maze.CoordXY{X: 7, Y: 7})
	text := m.String()

	fmt.Println(len(text))
	fmt.Println(maze.Load(text).Goal)
	// Output:
	// 2178
	// {7 7}
}

// ExampleVectorXY_Direction converts displacements back to directions.
func ExampleVectorXY_Direction() {
	d, err := maze.VectorXY{X: 0, Y: 1}.Direction()
	fmt.Println(d, err)

	_, err = maze.VectorXY{X: 1, Y: 1}.Direction()
	fmt.Println(err)
	// Output:
	// North <nil>
	// maze: vector is not a unit cardinal vector
}
