package solver

import (
	"github.com/they4kman/gomaze/game"
	"github.com/they4kman/gomaze/maze"
)

// Director walks a shortest path to each checkpoint in turn, then to the goal
type Director struct {
	game *game.Game

	target maze.Point
	path   []maze.Point
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.path = nil
}

func (director *Director) Act() (game.Direction, bool) {
	player := director.game.Player()
	target := director.game.NextTarget()

	if target != director.target || len(director.path) == 0 || director.path[0] != player {
		director.target = target
		director.path = maze.ShortestPath(director.game.Grid(), player, target)
	}

	if len(director.path) < 2 {
		// Milestones only count when stepped onto, so leave the target and come back
		if player == target {
			return director.stepAway(player)
		}
		return 0, false
	}

	next := director.path[1]
	director.path = director.path[1:]
	return game.DirectionBetween(player, next)
}

func (director *Director) stepAway(player maze.Point) (game.Direction, bool) {
	director.path = nil
	for _, direction := range game.Directions {
		if director.game.Grid().IsPassage(player.Add(direction.Offset())) {
			return direction, true
		}
	}
	return 0, false
}
