package game

import (
	"fmt"
	"github.com/gdamore/tcell/v2"
	"github.com/they4kman/gomaze/maze"
	"time"
)

var (
	terminalWallStyle       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	terminalStartStyle      = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	terminalGoalStyle       = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	terminalCheckpointStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	terminalReachedStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	terminalPlayerStyle     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
	terminalStatusStyle     = tcell.StyleDefault
)

var terminalKeys = map[tcell.Key]Direction{
	tcell.KeyUp:    Up,
	tcell.KeyDown:  Down,
	tcell.KeyLeft:  Left,
	tcell.KeyRight: Right,
}

var terminalRunes = map[rune]Direction{
	'k': Up,
	'j': Down,
	'h': Left,
	'l': Right,
}

type terminal struct {
	screen tcell.Screen
	game   *Game
}

// RunTerminal plays the game on a terminal screen until the player quits. The screen
// is initialised here and finalised on return.
func RunTerminal(game *Game, screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal: %w", err)
	}
	defer screen.Fini()

	return (&terminal{screen: screen, game: game}).run()
}

func (t *terminal) run() error {
	ticker := time.NewTicker(time.Second / time.Duration(t.game.config.FPS))
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t.draw()
	for {
		select {
		case ev := <-events:
			keepGoing, err := t.handleInput(ev)
			if err != nil || !keepGoing {
				return err
			}

		case <-ticker.C:
			t.game.Update(time.Now())
			t.draw()
		}
	}
}

// handleInput applies one terminal event to the game, and reports whether to keep
// running
func (t *terminal) handleInput(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false, nil
		}

		switch t.game.state {
		case Ready:
			if ev.Key() == tcell.KeyEnter {
				t.game.Start()
			}
		case Playing:
			if direction, ok := terminalKeys[ev.Key()]; ok {
				t.game.Move(direction)
			} else if direction, ok := terminalRunes[ev.Rune()]; ok && ev.Key() == tcell.KeyRune {
				t.game.Move(direction)
			}
		case Won:
			if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == 'r') {
				if err := t.game.Retry(); err != nil {
					return false, err
				}
			}
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}

	t.draw()
	return true, nil
}

func (t *terminal) draw() {
	t.screen.Clear()

	grid := t.game.grid
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			if grid.Get(maze.Point{Row: row, Col: col}) == maze.Wall {
				t.screen.SetContent(col, row, '█', nil, terminalWallStyle)
			}
		}
	}

	milestones := t.game.milestones
	t.setCell(maze.Start, 'S', terminalStartStyle)
	t.setCell(milestones.Goal, 'G', terminalGoalStyle)
	for i, checkpoint := range milestones.Checkpoints {
		style := terminalCheckpointStyle
		if i < t.game.checkpointIndex {
			style = terminalReachedStyle
		}
		t.setCell(checkpoint, rune('1'+i), style)
	}
	t.setCell(t.game.player, '@', terminalPlayerStyle)

	t.drawText(0, grid.Rows()+1, t.status())

	t.screen.Show()
}

func (t *terminal) status() string {
	switch t.game.state {
	case Ready:
		return "Press Enter to start, q to quit"
	case Playing:
		return fmt.Sprintf("Checkpoints %d/%d  Moves %d", t.game.checkpointIndex, maze.NumCheckpoints, t.game.moves)
	case Won:
		return fmt.Sprintf("Goal reached in %d moves! Enter to retry, q to quit", t.game.moves)
	default:
		return ""
	}
}

func (t *terminal) setCell(p maze.Point, r rune, style tcell.Style) {
	t.screen.SetContent(p.Col, p.Row, r, nil, style)
}

func (t *terminal) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, terminalStatusStyle)
	}
}
