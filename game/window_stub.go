//go:build nogui
// +build nogui

package game

import "fmt"

func RunWindow(game *Game) error {
	return fmt.Errorf("window frontend not available in this build; rebuild without -tags nogui or use --frontend terminal")
}
