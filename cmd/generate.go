package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/they4kman/gomaze/maze"
	"io"
	"strings"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

var generateFormat = formatText

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated maze and its milestones",
	Long: `Generate a maze with the configured size and seed, and print it.

The text format draws walls as blocks and marks the start (S), the
checkpoints (1-5) and the goal (G). The yaml format prints a snapshot
which can be played later with --snapshot.

	gomaze generate --seed 42 --format yaml > maze.yaml
	gomaze --snapshot maze.yaml
`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		seed := cfg.Seed
		if seed == 0 {
			seed = maze.RandomSeed()
		}

		grid, err := maze.GenerateSeeded(cfg.Rows(), cfg.Cols(), seed)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch generateFormat {
		case formatYAML:
			_, err = io.WriteString(out, maze.NewSnapshot(grid, seed).Serialize())
		case formatText:
			err = writeMarkedGrid(out, grid, seed)
		default:
			err = fmt.Errorf("unknown format %q (choose from %s, %s)", generateFormat, formatText, formatYAML)
		}
		return err
	},
}

// writeMarkedGrid prints the grid with the start, checkpoints and goal drawn over it
func writeMarkedGrid(out io.Writer, grid *maze.Grid, seed int64) error {
	order := maze.Traverse(grid, maze.Start)
	milestones := maze.DeriveMilestones(order)

	lines := strings.Split(strings.TrimSuffix(grid.String(), "\n"), "\n")
	cells := make([][]rune, len(lines))
	for row, line := range lines {
		cells[row] = []rune(line)
	}

	mark := func(p maze.Point, r rune) {
		cells[p.Row][p.Col] = r
	}
	mark(maze.Start, 'S')
	mark(milestones.Goal, 'G')
	for i, checkpoint := range milestones.Checkpoints {
		mark(checkpoint, rune('1'+i))
	}

	if _, err := fmt.Fprintf(out, "seed %d, %dx%d, %d passages\n", seed, grid.Rows(), grid.Cols(), len(order)); err != nil {
		return err
	}
	for _, row := range cells {
		if _, err := fmt.Fprintln(out, string(row)); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	generateCmd.Flags().StringVar(&generateFormat, "format", generateFormat, "Output format: text or yaml")
	rootCmd.AddCommand(generateCmd)
}
