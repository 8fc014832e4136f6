package cmd

import (
	"fmt"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gomaze/config"
	"github.com/they4kman/gomaze/director/random"
	"github.com/they4kman/gomaze/director/solver"
	"github.com/they4kman/gomaze/game"
	"github.com/they4kman/gomaze/maze"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"
)

var flagConfig = config.Default()
var configPath string

var directors = map[string]func() game.Director{
	"random": func() game.Director { return &random.Director{} },
	"solver": func() game.Director { return &solver.Director{} },
}

var rootCmd = &cobra.Command{
	Use:   "gomaze",
	Short: "Walk a generated maze through five checkpoints to the goal",
	Long: `gomaze generates a maze and places five numbered checkpoints and a goal
along it. Reach the checkpoints in order, then the goal.

Run with no arguments to play in a window
	gomaze

Play in the terminal instead
	gomaze --frontend terminal

Let the computer find its way
	gomaze --director solver

Settings may also come from a YAML file (--config), a .env file or MAZE_*
environment variables; flags win over both.
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		closeLog, err := setupLogging(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		gameConfig, err := newGameConfig(cfg)
		if err != nil {
			return err
		}

		g, err := game.NewGame(gameConfig)
		if err != nil {
			return err
		}

		switch cfg.Frontend {
		case config.FrontendTerminal:
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("opening terminal: %w", err)
			}
			return game.RunTerminal(g, screen)
		default:
			return game.RunWindow(g)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig layers the config file, .env and environment, and then any flags the
// user set explicitly, over the defaults
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if configPath != "" {
		if err := cfg.LoadFile(configPath); err != nil {
			return cfg, err
		}
	}
	if err := cfg.LoadEnv(); err != nil {
		return cfg, err
	}

	overrides := map[string]func(*config.Config){
		"width":             func(c *config.Config) { c.Width = flagConfig.Width },
		"height":            func(c *config.Config) { c.Height = flagConfig.Height },
		"cell-size":         func(c *config.Config) { c.CellSize = flagConfig.CellSize },
		"seed":              func(c *config.Config) { c.Seed = flagConfig.Seed },
		"fps":               func(c *config.Config) { c.FPS = flagConfig.FPS },
		"frontend":          func(c *config.Config) { c.Frontend = flagConfig.Frontend },
		"director":          func(c *config.Config) { c.Director = flagConfig.Director },
		"director-interval": func(c *config.Config) { c.DirectorInterval = flagConfig.DirectorInterval },
		"snapshot":          func(c *config.Config) { c.Snapshot = flagConfig.Snapshot },
		"log-level":         func(c *config.Config) { c.LogLevel = flagConfig.LogLevel },
		"log-file":          func(c *config.Config) { c.LogFile = flagConfig.LogFile },
	}
	for name, override := range overrides {
		if cmd.Flags().Changed(name) {
			override(&cfg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if _, known := directors[cfg.Director]; cfg.Director != "" && !known {
		return cfg, fmt.Errorf("%w: unknown director %q (choose from %s)", config.ErrInvalidConfig, cfg.Director, directorNames())
	}

	return cfg, nil
}

func newGameConfig(cfg config.Config) (game.GameConfig, error) {
	gameConfig := game.NewGameConfig()
	gameConfig.Rows = cfg.Rows()
	gameConfig.Cols = cfg.Cols()
	gameConfig.CellSize = cfg.CellSize
	gameConfig.Seed = cfg.Seed
	gameConfig.FPS = cfg.FPS
	gameConfig.DirectorInterval = cfg.DirectorInterval
	gameConfig.Logger = logrus.StandardLogger()

	if newDirector, ok := directors[cfg.Director]; ok {
		gameConfig.Director = newDirector()
	}

	if cfg.Snapshot != "" {
		in, err := ioutil.ReadFile(cfg.Snapshot)
		if err != nil {
			return gameConfig, fmt.Errorf("reading snapshot: %w", err)
		}
		snapshot, err := maze.LoadSnapshot(string(in))
		if err != nil {
			return gameConfig, err
		}
		gameConfig.Snapshot = snapshot
	}

	return gameConfig, nil
}

// setupLogging points logrus at the configured file, or away from the terminal when
// the terminal frontend owns it
func setupLogging(cfg config.Config) (func(), error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var out io.Writer = os.Stderr
	closeLog := func() {}

	switch {
	case cfg.LogFile != "":
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out = file
		closeLog = func() { file.Close() }
	case cfg.Frontend == config.FrontendTerminal:
		out = ioutil.Discard
	}

	logrus.SetOutput(out)
	return closeLog, nil
}

type frontendValue string

func newFrontendValue(val string, p *string) *frontendValue {
	*p = val
	return (*frontendValue)(p)
}

var frontends = map[string]bool{
	config.FrontendWindow:   true,
	config.FrontendTerminal: true,
}

func (frontendVal *frontendValue) String() string {
	return string(*frontendVal)
}

func (frontendVal *frontendValue) Set(value string) error {
	if frontends[value] {
		*frontendVal = frontendValue(value)
		return nil
	} else {
		return fmt.Errorf("invalid frontend")
	}
}

func (frontendVal *frontendValue) Type() string {
	return "frontend"
}

func directorNames() string {
	names := make([]string, 0, len(directors))
	for name := range directors {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.PersistentFlags().Bool("help", false, "Help for this command")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file to read settings from")
	rootCmd.PersistentFlags().IntVarP(&flagConfig.Width, "width", "w", flagConfig.Width, "Width of the window, in pixels")
	rootCmd.PersistentFlags().IntVarP(&flagConfig.Height, "height", "h", flagConfig.Height, "Height of the window, in pixels")
	rootCmd.PersistentFlags().IntVarP(&flagConfig.CellSize, "cell-size", "c", flagConfig.CellSize, "Side of a maze cell, in pixels")
	rootCmd.PersistentFlags().Int64VarP(&flagConfig.Seed, "seed", "s", flagConfig.Seed, "Seed for maze generation (0 for random)")
	rootCmd.PersistentFlags().StringVar(&flagConfig.LogLevel, "log-level", flagConfig.LogLevel, "Log level (debug, info, warning, error)")

	rootCmd.Flags().IntVar(&flagConfig.FPS, "fps", flagConfig.FPS, "Frames drawn per second")
	rootCmd.Flags().VarP(newFrontendValue(flagConfig.Frontend, &flagConfig.Frontend), "frontend", "f", `Where to play:
window: a desktop window, with mouse buttons and arrow keys
terminal: the current terminal, with arrow keys or h/j/k/l`)
	rootCmd.Flags().StringVarP(&flagConfig.Director, "director", "d", flagConfig.Director, "Make the computer play: "+directorNames())
	rootCmd.Flags().DurationVar(&flagConfig.DirectorInterval, "director-interval", flagConfig.DirectorInterval, "Time between two computer moves")
	rootCmd.Flags().StringVar(&flagConfig.Snapshot, "snapshot", flagConfig.Snapshot, "Play the maze stored in this snapshot file (see gomaze generate)")
	rootCmd.Flags().StringVar(&flagConfig.LogFile, "log-file", flagConfig.LogFile, "Append logs to this file instead of stderr")
}
