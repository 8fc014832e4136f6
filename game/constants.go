package game

import "github.com/they4kman/gomaze/maze"

type GameState int

const (
	// Waiting for the player to press start
	Ready GameState = iota
	Playing
	// Goal reached after every checkpoint
	Won
)

func (state GameState) String() string {
	switch state {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var Directions = []Direction{Up, Down, Left, Right}

var directionOffsets = map[Direction]maze.Point{
	Up:    {Row: -1, Col: 0},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
	Right: {Row: 0, Col: 1},
}

func (direction Direction) Offset() maze.Point {
	return directionOffsets[direction]
}

func (direction Direction) String() string {
	switch direction {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// DirectionBetween returns the direction of a single step from one cell to an
// adjacent one
func DirectionBetween(from, to maze.Point) (Direction, bool) {
	step := maze.Point{Row: to.Row - from.Row, Col: to.Col - from.Col}
	for direction, offset := range directionOffsets {
		if offset == step {
			return direction, true
		}
	}
	return 0, false
}
