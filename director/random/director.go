package random

import (
	"github.com/they4kman/gomaze/game"
	"github.com/they4kman/gomaze/maze"
	"github.com/they4kman/gomaze/util/collections"
)

// Director wanders the maze, preferring cells it has not stepped on yet and
// otherwise picking any open direction at random
type Director struct {
	game    *game.Game
	visited collections.Set[maze.Point]
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.visited = collections.NewSet(g.Player())
}

func (director *Director) Act() (game.Direction, bool) {
	grid := director.game.Grid()
	player := director.game.Player()

	var fresh, open []game.Direction
	for _, direction := range game.Directions {
		next := player.Add(direction.Offset())
		if !grid.IsPassage(next) {
			continue
		}
		open = append(open, direction)
		if !director.visited.Contains(next) {
			fresh = append(fresh, direction)
		}
	}

	choices := fresh
	if len(choices) == 0 {
		choices = open
	}
	if len(choices) == 0 {
		return 0, false
	}

	direction := choices[director.game.Rand().Intn(len(choices))]
	director.visited.Add(player.Add(direction.Offset()))
	return direction, true
}
