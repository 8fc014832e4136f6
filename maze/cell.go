package maze

import "fmt"

type CellState int

const (
	Wall CellState = iota
	Passage
)

func (state CellState) String() string {
	switch state {
	case Wall:
		return "Wall"
	case Passage:
		return "Passage"
	default:
		return fmt.Sprintf("CellState(%d)", int(state))
	}
}

// Point addresses a single cell by row and column
type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

func (p Point) Add(other Point) Point {
	return Point{Row: p.Row + other.Row, Col: p.Col + other.Col}
}

// Start is the cell every maze is carved from
var Start = Point{Row: 1, Col: 1}

// Neighbour offsets in expansion order: right, down, left, up. The order decides
// tie-breaks between equidistant cells of a traversal, and so where milestones land.
var neighborOffsets = [4]Point{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: -1, Col: 0},
}

// Carving offsets on the step-2 lattice, before shuffling
var carveOffsets = [4]Point{
	{Row: 0, Col: 2},
	{Row: 0, Col: -2},
	{Row: 2, Col: 0},
	{Row: -2, Col: 0},
}

// Neighbors returns the four orthogonal neighbours of p, in expansion order. Some
// may be out of bounds.
func (p Point) Neighbors() [4]Point {
	var neighbors [4]Point
	for i, offset := range neighborOffsets {
		neighbors[i] = p.Add(offset)
	}
	return neighbors
}
