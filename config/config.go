// SPDX-License-Identifier: MIT

// Package config loads runtime settings for the mazepath CLI and HTTP API
// from an optional .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/pathfind"
)

// Sentinel errors for configuration.
var (
	// ErrInvalidValue is returned when a variable cannot be parsed.
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrInvalidComplexity is returned for an unknown complexity tier.
	ErrInvalidComplexity = errors.New("config: invalid complexity")
)

// Environment variable names.
const (
	EnvComplexity   = "MAZE_COMPLEXITY"
	EnvAlgorithm    = "MAZE_ALGORITHM"
	EnvSeed         = "MAZE_SEED"
	EnvDepthLimit   = "MAZE_DEPTH_LIMIT"
	EnvIterationCap = "MAZE_ITERATION_CAP"
	EnvLogLevel     = "MAZE_LOG_LEVEL"
	EnvHTTPAddr     = "MAZE_HTTP_ADDR"
	EnvMaxDimension = "MAZE_MAX_DIMENSION"
	EnvLocalesDir   = "MAZE_LOCALES_DIR"
	EnvLanguage     = "MAZE_LANGUAGE"
)

// Config holds the application's configuration values.
type Config struct {
	Complexity   Complexity         // Default maze size tier
	Algorithm    pathfind.Algorithm // Default search algorithm
	Seed         int64              // Generator seed; 0 means time-seeded
	DepthLimit   int                // Bound for depthLimited search
	IterationCap int                // greedyBestFirst cap; 0 means cell count
	LogLevel     logrus.Level       // Level of the application logger
	HTTPAddr     string             // Listen address of the HTTP API
	MaxDimension int                // Largest width or height the API accepts
	LocalesDir   string             // Directory holding gettext catalogues
	Language     string             // Language of user-facing messages
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Complexity:   Medium,
		Algorithm:    pathfind.BFS,
		Seed:         0,
		DepthLimit:   pathfind.DefaultDepthLimit,
		IterationCap: 0,
		LogLevel:     logrus.InfoLevel,
		HTTPAddr:     ":8080",
		MaxDimension: 101,
		LocalesDir:   "locales",
		Language:     "en",
	}
}

// Load reads the given .env files (".env" when none is named) into the
// environment without overriding variables already set, then builds a
// Config from the environment. Missing .env files are not an error;
// malformed values are, and the error names the variable.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Complexity, err = ParseComplexity(getEnvWithDefault(EnvComplexity, string(cfg.Complexity))); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", EnvComplexity, err)
	}
	if cfg.Algorithm, err = pathfind.ParseAlgorithm(getEnvWithDefault(EnvAlgorithm, cfg.Algorithm.String())); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", EnvAlgorithm, err)
	}
	if cfg.Seed, err = getEnvAsInt64(EnvSeed, cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.DepthLimit, err = getEnvAsNonNegativeInt(EnvDepthLimit, cfg.DepthLimit); err != nil {
		return Config{}, err
	}
	if cfg.IterationCap, err = getEnvAsNonNegativeInt(EnvIterationCap, cfg.IterationCap); err != nil {
		return Config{}, err
	}
	if cfg.MaxDimension, err = getEnvAsNonNegativeInt(EnvMaxDimension, cfg.MaxDimension); err != nil {
		return Config{}, err
	}

	level := getEnvWithDefault(EnvLogLevel, cfg.LogLevel.String())
	if cfg.LogLevel, err = logrus.ParseLevel(level); err != nil {
		return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, EnvLogLevel, level, err)
	}

	cfg.HTTPAddr = getEnvWithDefault(EnvHTTPAddr, cfg.HTTPAddr)
	cfg.LocalesDir = getEnvWithDefault(EnvLocalesDir, cfg.LocalesDir)
	cfg.Language = getEnvWithDefault(EnvLanguage, cfg.Language)

	return cfg, nil
}

// SearchOptions converts the search-related settings to pathfind options
// for algo. The configured depth bound applies to depthLimited only; plain
// dfs stays unbounded.
func (c Config) SearchOptions(algo pathfind.Algorithm) []pathfind.Option {
	opts := []pathfind.Option{pathfind.WithIterationCap(c.IterationCap)}
	if algo == pathfind.DepthLimited {
		opts = append(opts, pathfind.WithDepthLimit(c.DepthLimit))
	}
	return opts
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 parses an optional integer variable.
func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidValue, key, raw)
	}
	return v, nil
}

// getEnvAsNonNegativeInt parses an optional integer variable that must not be negative.
func getEnvAsNonNegativeInt(key string, defaultValue int) (int, error) {
	v, err := getEnvAsInt64(key, int64(defaultValue))
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidValue, key, v)
	}
	return int(v), nil
}
