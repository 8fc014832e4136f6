package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesClassicWindow(t *testing.T) {
	config := Default()

	assert.NoError(t, config.Validate())
	assert.Equal(t, 30, config.Rows())
	assert.Equal(t, 40, config.Cols())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -20 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"two rows", func(c *Config) { c.Height = 59 }},
		{"two cols", func(c *Config) { c.Width = 40; c.CellSize = 20 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"zero director interval", func(c *Config) { c.DirectorInterval = 0 }},
		{"unknown frontend", func(c *Config) { c.Frontend = "vr" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.modify(&config)
			assert.ErrorIs(t, config.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidateAcceptsSmallestMaze(t *testing.T) {
	config := Default()
	config.Width, config.Height, config.CellSize = 60, 60, 20

	assert.NoError(t, config.Validate())
}

func TestParseOverlaysFile(t *testing.T) {
	config := Default()

	err := config.Parse([]byte(`
width: 420
seed: 99
frontend: terminal
director_interval: 250ms
`))
	require.NoError(t, err)

	assert.Equal(t, 420, config.Width)
	assert.Equal(t, 600, config.Height)
	assert.Equal(t, int64(99), config.Seed)
	assert.Equal(t, FrontendTerminal, config.Frontend)
	assert.Equal(t, 250*time.Millisecond, config.DirectorInterval)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	config := Default()
	assert.ErrorIs(t, config.Parse([]byte("colour: blue\n")), ErrInvalidConfig)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gomaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cell_size: 10\n"), 0644))

	config := Default()
	require.NoError(t, config.LoadFile(path))
	assert.Equal(t, 60, config.Rows())

	assert.Error(t, config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestLoadEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MAZE_FPS=60\nMAZE_DIRECTOR=solver\n"), 0644))

	t.Setenv("MAZE_SEED", "1234")
	t.Setenv("MAZE_CELL_SIZE", "10")
	t.Setenv("MAZE_DIRECTOR_INTERVAL", "1s")
	t.Setenv("MAZE_LOG_LEVEL", "debug")
	// Variables already set win over the .env file
	t.Setenv("MAZE_DIRECTOR", "random")
	t.Cleanup(func() { os.Unsetenv("MAZE_FPS") })

	config := Default()
	require.NoError(t, config.LoadEnv(envFile))

	assert.Equal(t, int64(1234), config.Seed)
	assert.Equal(t, 10, config.CellSize)
	assert.Equal(t, 60, config.FPS)
	assert.Equal(t, time.Second, config.DirectorInterval)
	assert.Equal(t, "random", config.Director)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadEnvIgnoresMissingDotEnv(t *testing.T) {
	config := Default()
	assert.NoError(t, config.LoadEnv(filepath.Join(t.TempDir(), ".env")))
	assert.Equal(t, Default(), config)
}

func TestLoadEnvRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("MAZE_WIDTH", "wide")

	config := Default()
	assert.ErrorIs(t, config.LoadEnv(filepath.Join(t.TempDir(), ".env")), ErrInvalidConfig)
}
