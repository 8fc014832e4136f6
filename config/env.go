package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"os"
	"strconv"
	"time"
)

const envPrefix = "MAZE_"

// LoadEnv reads .env files (the working directory's .env when none are named) into
// the environment, then applies any MAZE_* variables onto config. Missing .env files
// are not an error.
func (config *Config) LoadEnv(envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading env files: %w", err)
	}

	ints := map[string]*int{
		"WIDTH":     &config.Width,
		"HEIGHT":    &config.Height,
		"CELL_SIZE": &config.CellSize,
		"FPS":       &config.FPS,
	}
	for key, field := range ints {
		if value, exists := lookupEnv(key); exists {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalidConfig, envPrefix, key, err)
			}
			*field = parsed
		}
	}

	if value, exists := lookupEnv("SEED"); exists {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED must be an integer: %v", ErrInvalidConfig, envPrefix, err)
		}
		config.Seed = seed
	}

	if value, exists := lookupEnv("DIRECTOR_INTERVAL"); exists {
		interval, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %sDIRECTOR_INTERVAL must be a duration: %v", ErrInvalidConfig, envPrefix, err)
		}
		config.DirectorInterval = interval
	}

	strs := map[string]*string{
		"FRONTEND":  &config.Frontend,
		"DIRECTOR":  &config.Director,
		"SNAPSHOT":  &config.Snapshot,
		"LOG_LEVEL": &config.LogLevel,
		"LOG_FILE":  &config.LogFile,
	}
	for key, field := range strs {
		if value, exists := lookupEnv(key); exists {
			*field = value
		}
	}

	return nil
}

func lookupEnv(key string) (string, bool) {
	return os.LookupEnv(envPrefix + key)
}
