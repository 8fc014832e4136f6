package maze

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v2"
	"strings"
)

const (
	wallRune    = '#'
	passageRune = '.'
)

var ErrInvalidSnapshot = errors.New("invalid maze snapshot")

// Snapshot is the YAML form of a maze: the seed it was generated from, and the board
// with one line per row, '#' for walls and '.' for passages
type Snapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func NewSnapshot(grid *Grid, seed int64) *Snapshot {
	rows := make([]string, grid.rows)
	for row := range grid.cells {
		var line strings.Builder
		for _, state := range grid.cells[row] {
			if state == Wall {
				line.WriteRune(wallRune)
			} else {
				line.WriteRune(passageRune)
			}
		}
		rows[row] = line.String()
	}

	return &Snapshot{
		Seed:            seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (snapshot *Snapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// Grid rebuilds the board. The result must have a solid border and a passage at Start.
func (snapshot *Snapshot) Grid() (*Grid, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")

	height, width := len(rows), len(rows[0])
	if height < MinDimension || width < MinDimension {
		return nil, fmt.Errorf("%w: board is %dx%d: %v", ErrInvalidSnapshot, height, width, ErrInvalidDimensions)
	}

	grid := NewGrid(height, width)
	for row, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidSnapshot, row, len(line), width)
		}

		for col, c := range line {
			switch c {
			case wallRune:
			case passageRune:
				onBorder := row == 0 || col == 0 || row == height-1 || col == width-1
				if onBorder {
					return nil, fmt.Errorf("%w: border cell (%d, %d) is not a wall", ErrInvalidSnapshot, row, col)
				}
				grid.cells[row][col] = Passage
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d, %d)", ErrInvalidSnapshot, c, row, col)
			}
		}
	}

	if grid.Get(Start) != Passage {
		return nil, fmt.Errorf("%w: start cell %v is a wall", ErrInvalidSnapshot, Start)
	}

	return grid, nil
}

func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &snapshot, nil
}
