package game

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gomaze/maze"
	"math/rand"
	"time"
)

type GameConfig struct {
	Rows, Cols int

	// Seed of the first round; 0 picks one from the clock
	Seed int64

	// Snapshot to load the maze from, instead of generating one each round
	Snapshot *maze.Snapshot

	Director Director
	// Time between two director moves
	DirectorInterval time.Duration

	// Side of a cell in pixels, for the window frontend
	CellSize int
	FPS      int

	Logger logrus.FieldLogger
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Rows:             30,
		Cols:             40,
		DirectorInterval: 100 * time.Millisecond,
		CellSize:         20,
		FPS:              30,
		Logger:           logrus.StandardLogger(),
	}
}

// Game holds one player's progress through a series of mazes. Each round gets a
// fresh maze and milestones; the grid is never changed while a round is played.
type Game struct {
	config GameConfig
	log    logrus.FieldLogger

	round uuid.UUID
	seed  int64
	rand  *rand.Rand

	grid       *maze.Grid
	order      []maze.Point
	milestones maze.Milestones

	state           GameState
	player          maze.Point
	checkpointIndex int
	moves           int

	lastDirectorAct time.Time
}

func NewGame(config GameConfig) (*Game, error) {
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}

	game := &Game{
		config: config,
	}

	seed := config.Seed
	if seed == 0 && config.Snapshot == nil {
		seed = maze.RandomSeed()
	}
	if err := game.newRound(seed); err != nil {
		return nil, err
	}

	return game, nil
}

func (game *Game) newRound(seed int64) error {
	var grid *maze.Grid
	var err error

	if game.config.Snapshot != nil {
		seed = game.config.Snapshot.Seed
		game.rand = rand.New(rand.NewSource(seed))
		grid, err = game.config.Snapshot.Grid()
	} else {
		game.rand = rand.New(rand.NewSource(seed))
		grid, err = maze.Generate(game.config.Rows, game.config.Cols, game.rand)
	}
	if err != nil {
		return fmt.Errorf("creating maze: %w", err)
	}

	game.round = uuid.New()
	game.seed = seed
	game.grid = grid
	game.order = maze.Traverse(grid, maze.Start)
	game.milestones = maze.DeriveMilestones(game.order)

	game.state = Ready
	game.player = maze.Start
	game.checkpointIndex = 0
	game.moves = 0

	game.log = game.config.Logger.WithFields(logrus.Fields{
		"round": game.round.String(),
		"seed":  seed,
	})
	game.log.WithFields(logrus.Fields{
		"rows":     grid.Rows(),
		"cols":     grid.Cols(),
		"passages": len(game.order),
		"goal":     game.milestones.Goal.String(),
	}).Info("Maze ready")

	if game.config.Director != nil {
		game.config.Director.Init(game)
	}

	return nil
}

// Start begins play of a round waiting in the Ready state
func (game *Game) Start() {
	if game.state != Ready {
		return
	}
	game.state = Playing
	game.lastDirectorAct = time.Time{}
	game.log.Debug("Round started")
}

// Retry abandons the current round for a new one, generated from a seed drawn from
// the current round's random source (or reloaded from the snapshot, if playing one)
func (game *Game) Retry() error {
	game.log.WithField("state", game.state.String()).Info("Retrying")
	return game.newRound(game.rand.Int63())
}

// Move steps the player one cell in the given direction. Walls and the grid's edge
// block the move. Landing on the next checkpoint counts it; landing on the goal once
// every checkpoint is counted wins the round.
func (game *Game) Move(direction Direction) bool {
	if game.state != Playing {
		return false
	}

	target := game.player.Add(direction.Offset())
	if !game.grid.IsPassage(target) {
		return false
	}

	game.player = target
	game.moves++

	if game.checkpointIndex < maze.NumCheckpoints && target == game.milestones.Checkpoints[game.checkpointIndex] {
		game.checkpointIndex++
		game.log.WithFields(logrus.Fields{
			"checkpoint": game.checkpointIndex,
			"cell":       target.String(),
			"moves":      game.moves,
		}).Debug("Checkpoint reached")
	}

	if target == game.milestones.Goal && game.checkpointIndex == maze.NumCheckpoints {
		game.state = Won
		game.log.WithField("moves", game.moves).Info("Goal reached")
	}

	return true
}

// ActDirector lets the director make one move, if the round is being played
func (game *Game) ActDirector() bool {
	if game.config.Director == nil || game.state != Playing {
		return false
	}

	direction, ok := game.config.Director.Act()
	if !ok {
		return false
	}
	return game.Move(direction)
}

// Update is called by frontends once per frame, and paces the director
func (game *Game) Update(now time.Time) {
	if game.config.Director == nil || game.state != Playing {
		return
	}
	if now.Sub(game.lastDirectorAct) < game.config.DirectorInterval {
		return
	}
	game.lastDirectorAct = now
	game.ActDirector()
}

func (game *Game) Grid() *maze.Grid {
	return game.grid
}

// Traversal is the breadth-first visiting order the milestones were sampled from
func (game *Game) Traversal() []maze.Point {
	return game.order
}

func (game *Game) Milestones() maze.Milestones {
	return game.milestones
}

func (game *Game) Player() maze.Point {
	return game.player
}

func (game *Game) State() GameState {
	return game.state
}

// CheckpointIndex is the number of checkpoints counted so far
func (game *Game) CheckpointIndex() int {
	return game.checkpointIndex
}

// NextTarget is the next checkpoint to reach, or the goal once they are all counted
func (game *Game) NextTarget() maze.Point {
	if game.checkpointIndex < maze.NumCheckpoints {
		return game.milestones.Checkpoints[game.checkpointIndex]
	}
	return game.milestones.Goal
}

func (game *Game) Moves() int {
	return game.moves
}

func (game *Game) Seed() int64 {
	return game.seed
}

func (game *Game) Round() uuid.UUID {
	return game.round
}

func (game *Game) Rand() *rand.Rand {
	return game.rand
}

func (game *Game) Snapshot() *maze.Snapshot {
	return maze.NewSnapshot(game.grid, game.seed)
}
