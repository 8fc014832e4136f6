//go:build !nogui
// +build !nogui

package game

import (
	"fmt"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/they4kman/gomaze/maze"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
	"image/color"
	"time"
)

var (
	wallColor       = colornames.Black
	startColor      = colornames.Lime
	goalColor       = colornames.Red
	checkpointColor = colornames.Blue
	playerColor     = colornames.Lightgray
)

var windowKeys = map[pixelgl.Button]Direction{
	pixelgl.KeyUp:    Up,
	pixelgl.KeyDown:  Down,
	pixelgl.KeyLeft:  Left,
	pixelgl.KeyRight: Right,
}

type button struct {
	label string
	rect  pixel.Rect
	color color.Color
}

// buttons returns the start button shown before play, and the quit and retry
// buttons shown once the goal is reached, all centred in a window of the given size
func buttons(bounds pixel.Rect) (start, quit, retry button) {
	center := bounds.Center()
	start = button{"Start", pixel.R(center.X-60, center.Y-20, center.X+60, center.Y+30), startColor}
	quit = button{"Quit", pixel.R(center.X-130, center.Y-20, center.X-30, center.Y+30), goalColor}
	retry = button{"Retry", pixel.R(center.X+30, center.Y-20, center.X+150, center.Y+30), startColor}
	return
}

// RunWindow plays the game in a desktop window until it is closed. It must be called
// from the main goroutine.
func RunWindow(game *Game) (err error) {
	pixelgl.Run(func() {
		err = runWindow(game)
	})
	return
}

func runWindow(game *Game) error {
	cellSize := float64(game.config.CellSize)

	cfg := pixelgl.WindowConfig{
		Title: "gomaze",
		Bounds: pixel.R(
			0, 0,
			float64(game.grid.Cols())*cellSize,
			float64(game.grid.Rows())*cellSize,
		),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	startButton, quitButton, retryButton := buttons(win.Bounds())

	// Cell (row, col) is drawn with row 0 at the top of the window
	cellRect := func(p maze.Point) pixel.Rect {
		corner := pixel.V(float64(p.Col)*cellSize, win.Bounds().H()-float64(p.Row+1)*cellSize)
		return pixel.Rect{Min: corner, Max: corner.Add(pixel.V(cellSize, cellSize))}
	}

	drawButton := func(imd *imdraw.IMDraw, b button) {
		imd.Color = b.color
		imd.Push(b.rect.Min, b.rect.Max)
		imd.Rectangle(0)
	}

	labelButton := func(b button) {
		label := text.New(b.rect.Min.Add(pixel.V(10, b.rect.H()/2-4)), basicAtlas)
		label.Color = colornames.Black
		fmt.Fprint(label, b.label)
		label.Draw(win, pixel.IM)
	}

	var (
		frames = 0
		second = time.Tick(time.Second)
		frame  = time.Tick(time.Second / time.Duration(game.config.FPS))
	)

	for !win.Closed() {
		win.Update()
		win.Clear(colornames.White)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		game.Update(time.Now())

		imd := imdraw.New(nil)
		for row := 0; row < game.grid.Rows(); row++ {
			for col := 0; col < game.grid.Cols(); col++ {
				p := maze.Point{Row: row, Col: col}
				if game.grid.Get(p) == maze.Passage {
					continue
				}
				rect := cellRect(p)
				imd.Color = wallColor
				imd.Push(rect.Min, rect.Max)
				imd.Rectangle(0)
			}
		}

		milestones := game.milestones
		for _, highlight := range []struct {
			cell  maze.Point
			color color.Color
		}{
			{maze.Start, startColor},
			{milestones.Goal, goalColor},
		} {
			rect := cellRect(highlight.cell)
			imd.Color = highlight.color
			imd.Push(rect.Min, rect.Max)
			imd.Rectangle(0)
		}
		for _, checkpoint := range milestones.Checkpoints {
			rect := cellRect(checkpoint)
			imd.Color = checkpointColor
			imd.Push(rect.Min, rect.Max)
			imd.Rectangle(0)
		}

		playerRect := cellRect(game.player)
		imd.Color = playerColor
		imd.Push(playerRect.Min, playerRect.Max)
		imd.Rectangle(0)

		switch game.state {
		case Ready:
			drawButton(imd, startButton)
		case Won:
			drawButton(imd, quitButton)
			drawButton(imd, retryButton)
		}
		imd.Draw(win)

		for i, checkpoint := range milestones.Checkpoints {
			label := text.New(cellRect(checkpoint).Min.Add(pixel.V(5, 5)), basicAtlas)
			label.Color = colornames.White
			fmt.Fprint(label, i+1)
			label.Draw(win, pixel.IM)
		}

		switch game.state {
		case Ready:
			labelButton(startButton)

			clicked := win.JustPressed(pixelgl.MouseButtonLeft) && startButton.rect.Contains(win.MousePosition())
			if clicked || win.JustPressed(pixelgl.KeyEnter) {
				game.Start()
			}
		case Playing:
			for key, direction := range windowKeys {
				if win.JustPressed(key) || win.Repeated(key) {
					game.Move(direction)
				}
			}
		case Won:
			labelButton(quitButton)
			labelButton(retryButton)

			if win.JustPressed(pixelgl.MouseButtonLeft) {
				switch {
				case quitButton.rect.Contains(win.MousePosition()):
					win.SetClosed(true)
				case retryButton.rect.Contains(win.MousePosition()):
					if err := game.Retry(); err != nil {
						return err
					}
				}
			} else if win.JustPressed(pixelgl.KeyEnter) {
				if err := game.Retry(); err != nil {
					return err
				}
			}
		}

		if win.JustPressed(pixelgl.KeyEscape) {
			win.SetClosed(true)
		}

		<-frame
	}

	return nil
}
