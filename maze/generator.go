package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// MinDimension is the smallest row or column count that leaves an interior to carve
const MinDimension = 3

var ErrInvalidDimensions = errors.New("maze needs at least 3 rows and 3 columns")

// carveFrame stands in for one level of the recursive wall extension: the cell being
// extended, its shuffled carving offsets and the next offset to try
type carveFrame struct {
	cell    Point
	offsets [4]Point
	next    int
}

func newCarveFrame(cell Point, rng *rand.Rand) carveFrame {
	frame := carveFrame{cell: cell, offsets: carveOffsets}
	rng.Shuffle(len(frame.offsets), func(i, j int) {
		frame.offsets[i], frame.offsets[j] = frame.offsets[j], frame.offsets[i]
	})
	return frame
}

// RandomSeed returns a seed drawn from the clock, for callers that have not pinned one
func RandomSeed() int64 {
	return time.Now().UnixNano()
}

// GenerateSeeded is Generate with a fresh rand.Rand seeded by seed. The same seed
// always produces the same grid.
func GenerateSeeded(rows, cols int, seed int64) (*Grid, error) {
	return Generate(rows, cols, rand.New(rand.NewSource(seed)))
}

// Generate carves a maze into a fresh rows x cols grid by randomized wall extension
// from Start. Cells two steps away are visited depth-first in a shuffled order, each
// one joined to its parent through the wall between them, so passages form a spanning
// tree over the odd lattice and the outer border stays solid.
func Generate(rows, cols int, rng *rand.Rand) (*Grid, error) {
	if rows < MinDimension || cols < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}

	grid := NewGrid(rows, cols)
	grid.Set(Start, Passage)

	stack := []carveFrame{newCarveFrame(Start, rng)}
	for len(stack) > 0 {
		frame := &stack[len(stack)-1]
		if frame.next == len(frame.offsets) {
			stack = stack[:len(stack)-1]
			continue
		}

		offset := frame.offsets[frame.next]
		frame.next++

		target := frame.cell.Add(offset)
		if !grid.isCarvable(target) {
			continue
		}

		between := Point{
			Row: frame.cell.Row + offset.Row/2,
			Col: frame.cell.Col + offset.Col/2,
		}
		grid.Set(target, Passage)
		grid.Set(between, Passage)

		// Descend before trying the parent's remaining offsets
		stack = append(stack, newCarveFrame(target, rng))
	}

	return grid, nil
}

// isCarvable reports whether p lies strictly inside the border and is still solid
func (grid *Grid) isCarvable(p Point) bool {
	if p.Row < 1 || p.Row >= grid.rows-1 || p.Col < 1 || p.Col >= grid.cols-1 {
		return false
	}
	return grid.cells[p.Row][p.Col] == Wall
}
