// Package config gathers the settings a game is started with: window and cell
// sizes in pixels (which fix the maze's rows and columns), the seed, frame rate,
// frontend, auto-player and logging. Values are layered: Default, then an optional
// YAML file, then .env files and MAZE_* environment variables, and finally whatever
// command-line flags were given explicitly.
package config

import (
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"io/ioutil"
	"time"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// Window size in pixels
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Side of one maze cell in pixels
	CellSize int `yaml:"cell_size"`

	// Seed for maze generation; 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	FPS      int    `yaml:"fps"`
	Frontend string `yaml:"frontend"`

	// Name of the auto-player, empty to play by hand
	Director         string        `yaml:"director"`
	DirectorInterval time.Duration `yaml:"director_interval"`

	// Path to a maze snapshot to play instead of generating mazes
	Snapshot string `yaml:"snapshot"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

func Default() Config {
	return Config{
		Width:            800,
		Height:           600,
		CellSize:         20,
		FPS:              30,
		Frontend:         FrontendWindow,
		DirectorInterval: 100 * time.Millisecond,
		LogLevel:         "info",
	}
}

// Rows is the number of maze rows that fit the window
func (config Config) Rows() int {
	return config.Height / config.CellSize
}

// Cols is the number of maze columns that fit the window
func (config Config) Cols() int {
	return config.Width / config.CellSize
}

// LoadFile overlays the values present in a YAML file onto config
func (config *Config) LoadFile(path string) error {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return config.Parse(in)
}

func (config *Config) Parse(in []byte) error {
	if err := yaml.UnmarshalStrict(in, config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (config Config) Validate() error {
	switch {
	case config.Width <= 0 || config.Height <= 0:
		return fmt.Errorf("%w: window must be positive, got %dx%d", ErrInvalidConfig, config.Width, config.Height)
	case config.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, config.CellSize)
	case config.Rows() < 3 || config.Cols() < 3:
		return fmt.Errorf("%w: %dx%d px with %d px cells leaves a %dx%d maze, need at least 3x3",
			ErrInvalidConfig, config.Width, config.Height, config.CellSize, config.Rows(), config.Cols())
	case config.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, config.FPS)
	case config.DirectorInterval <= 0:
		return fmt.Errorf("%w: director interval must be positive, got %v", ErrInvalidConfig, config.DirectorInterval)
	case config.Frontend != FrontendWindow && config.Frontend != FrontendTerminal:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalidConfig, config.Frontend)
	}

	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
