package maze

import (
	"fmt"
	"strings"
)

type Grid struct {
	rows, cols int
	cells      [][]CellState
}

// NewGrid creates a grid of the given size with every cell set to Wall
func NewGrid(rows, cols int) *Grid {
	grid := Grid{
		rows:  rows,
		cols:  cols,
		cells: make([][]CellState, rows),
	}

	for row := 0; row < rows; row++ {
		grid.cells[row] = make([]CellState, cols)
		for col := 0; col < cols; col++ {
			grid.cells[row][col] = Wall
		}
	}

	return &grid
}

func (grid *Grid) Rows() int {
	return grid.rows
}

func (grid *Grid) Cols() int {
	return grid.cols
}

func (grid *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < grid.rows && p.Col < grid.cols
}

// Get returns the state of the cell at p. Callers must check InBounds first.
func (grid *Grid) Get(p Point) CellState {
	grid.mustBeInBounds(p)
	return grid.cells[p.Row][p.Col]
}

// Set changes the state of the cell at p. Callers must check InBounds first.
func (grid *Grid) Set(p Point, state CellState) {
	grid.mustBeInBounds(p)
	grid.cells[p.Row][p.Col] = state
}

// IsPassage reports whether p is inside the grid and walkable
func (grid *Grid) IsPassage(p Point) bool {
	return grid.InBounds(p) && grid.cells[p.Row][p.Col] == Passage
}

func (grid *Grid) NumPassages() int {
	total := 0
	for _, row := range grid.cells {
		for _, state := range row {
			if state == Passage {
				total++
			}
		}
	}
	return total
}

// Passages returns every passage cell in row-major order
func (grid *Grid) Passages() []Point {
	passages := make([]Point, 0, grid.NumPassages())
	for row := 0; row < grid.rows; row++ {
		for col := 0; col < grid.cols; col++ {
			if grid.cells[row][col] == Passage {
				passages = append(passages, Point{Row: row, Col: col})
			}
		}
	}
	return passages
}

func (grid *Grid) Equal(other *Grid) bool {
	if grid.rows != other.rows || grid.cols != other.cols {
		return false
	}
	for row := range grid.cells {
		for col := range grid.cells[row] {
			if grid.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

func (grid *Grid) String() string {
	var builder strings.Builder
	for row := 0; row < grid.rows; row++ {
		for col := 0; col < grid.cols; col++ {
			if grid.cells[row][col] == Wall {
				builder.WriteRune('█')
			} else {
				builder.WriteRune(' ')
			}
		}
		builder.WriteRune('\n')
	}
	return builder.String()
}

func (grid *Grid) mustBeInBounds(p Point) {
	if !grid.InBounds(p) {
		panic(fmt.Sprintf("maze: cell %v outside %dx%d grid", p, grid.rows, grid.cols))
	}
}
