package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gomaze/maze"
)

func newTestTerminal(t *testing.T, game *Game) *terminal {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)

	return &terminal{screen: screen, game: game}
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTerminalPlaysRound(t *testing.T) {
	game := newRingGame(t)
	term := newTestTerminal(t, game)

	inputs := []tcell.Event{
		key(tcell.KeyRight), // ignored until started
		key(tcell.KeyEnter),
		key(tcell.KeyRight),
		runeKey('j'),
	}
	for _, ev := range inputs {
		keepGoing, err := term.handleInput(ev)
		require.NoError(t, err)
		require.True(t, keepGoing)
	}

	assert.Equal(t, Playing, game.State())
	assert.Equal(t, maze.Point{Row: 1, Col: 2}, game.Player(), "j runs into a wall")
	assert.Equal(t, 1, game.CheckpointIndex())
	assert.Contains(t, term.status(), "Checkpoints 1/5")
}

func TestTerminalRetriesAfterWin(t *testing.T) {
	game := newRingGame(t)
	term := newTestTerminal(t, game)
	game.Start()
	moveAll(t, game, Right, Left, Down, Up, Right, Right, Down, Down, Left, Left, Right, Right, Up, Down, Left)
	require.Equal(t, Won, game.State())
	assert.Contains(t, term.status(), "Goal reached in 15 moves")

	keepGoing, err := term.handleInput(runeKey('r'))
	require.NoError(t, err)
	assert.True(t, keepGoing)
	assert.Equal(t, Ready, game.State())
	assert.Contains(t, term.status(), "Press Enter")
}

func TestTerminalQuits(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		runeKey('q'),
		key(tcell.KeyEscape),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		term := newTestTerminal(t, newRingGame(t))

		keepGoing, err := term.handleInput(ev)
		assert.NoError(t, err)
		assert.False(t, keepGoing)
	}
}

func TestTerminalRunStopsOnQuit(t *testing.T) {
	game := newRingGame(t)
	term := newTestTerminal(t, game)

	require.NoError(t, term.screen.PostEvent(key(tcell.KeyEnter)))
	require.NoError(t, term.screen.PostEvent(key(tcell.KeyDown)))
	require.NoError(t, term.screen.PostEvent(runeKey('q')))

	assert.NoError(t, term.run())
	assert.Equal(t, maze.Point{Row: 2, Col: 1}, game.Player())
}
