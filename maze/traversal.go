package maze

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/gomaze/util/collections"
)

// NumCheckpoints is how many checkpoints precede the goal
const NumCheckpoints = 5

// milestoneDivisions splits a traversal into NumCheckpoints+2 stretches: the start,
// one per checkpoint and the goal
const milestoneDivisions = NumCheckpoints + 2

type Milestones struct {
	Checkpoints [NumCheckpoints]Point
	Goal        Point
}

// Traverse walks the grid breadth-first from start and returns every reachable
// passage exactly once, ordered by distance from start. Neighbours are queued in the
// order right, down, left, up, which fixes the order of equidistant cells.
func Traverse(grid *Grid, start Point) []Point {
	visited := make(collections.Set[Point])
	order := make([]Point, 0)

	var queue deque.Deque
	queue.PushBack(start)

	for queue.Len() > 0 {
		cell := queue.PopFront().(Point)
		if visited.Contains(cell) {
			continue
		}
		visited.Add(cell)
		order = append(order, cell)

		for _, neighbor := range cell.Neighbors() {
			if grid.IsPassage(neighbor) && !visited.Contains(neighbor) {
				queue.PushBack(neighbor)
			}
		}
	}

	return order
}

// DeriveMilestones samples checkpoints and the goal at even intervals of a traversal.
// With step = len(order)/7, checkpoint k sits at order[k*step] and the goal at
// order[6*step]. Traversals shorter than seven cells have a step of zero, and every
// milestone then lands on order[0].
func DeriveMilestones(order []Point) Milestones {
	var milestones Milestones
	if len(order) == 0 {
		return milestones
	}

	step := len(order) / milestoneDivisions
	for i := range milestones.Checkpoints {
		milestones.Checkpoints[i] = order[(i+1)*step]
	}
	milestones.Goal = order[(NumCheckpoints+1)*step]

	return milestones
}

// MilestoneIndexes returns the positions of the checkpoints and the goal within a traversal of
// length n, in the order they must be reached
func MilestoneIndexes(n int) [NumCheckpoints + 1]int {
	var indexes [NumCheckpoints + 1]int
	step := n / milestoneDivisions
	for i := range indexes {
		indexes[i] = (i + 1) * step
	}
	return indexes
}

// All returns the checkpoints followed by the goal
func (milestones Milestones) All() []Point {
	all := make([]Point, 0, NumCheckpoints+1)
	all = append(all, milestones.Checkpoints[:]...)
	return append(all, milestones.Goal)
}

// ShortestPath returns the cells of a shortest walk from one passage to another,
// both ends included, or nil when to cannot be reached
func ShortestPath(grid *Grid, from, to Point) []Point {
	if !grid.IsPassage(from) || !grid.IsPassage(to) {
		return nil
	}

	cameFrom := map[Point]Point{from: from}

	var queue deque.Deque
	queue.PushBack(from)

	for queue.Len() > 0 {
		cell := queue.PopFront().(Point)
		if cell == to {
			path := []Point{cell}
			for cell != from {
				cell = cameFrom[cell]
				path = append(path, cell)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, neighbor := range cell.Neighbors() {
			if _, seen := cameFrom[neighbor]; seen || !grid.IsPassage(neighbor) {
				continue
			}
			cameFrom[neighbor] = cell
			queue.PushBack(neighbor)
		}
	}

	return nil
}
