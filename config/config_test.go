package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathfind"
)

var allKeys = []string{
	config.EnvComplexity, config.EnvAlgorithm, config.EnvSeed, config.EnvDepthLimit,
	config.EnvIterationCap, config.EnvLogLevel, config.EnvHTTPAddr, config.EnvMaxDimension,
	config.EnvLocalesDir, config.EnvLanguage,
}

// unsetAll removes every MAZE_* variable for the duration of the test.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "") // registers restoration
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	unsetAll(t)
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, config.Medium, cfg.Complexity)
	assert.Equal(t, pathfind.BFS, cfg.Algorithm)
	assert.Equal(t, 10, cfg.DepthLimit)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 101, cfg.MaxDimension)
}

func TestFromEnv_Overrides(t *testing.T) {
	unsetAll(t)
	t.Setenv(config.EnvComplexity, "HARD")
	t.Setenv(config.EnvAlgorithm, "bidirectional")
	t.Setenv(config.EnvSeed, "-42")
	t.Setenv(config.EnvDepthLimit, "7")
	t.Setenv(config.EnvIterationCap, "500")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvHTTPAddr, "127.0.0.1:9000")
	t.Setenv(config.EnvMaxDimension, "51")
	t.Setenv(config.EnvLanguage, "uk")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Hard, cfg.Complexity)
	assert.Equal(t, 35, cfg.Complexity.Size())
	assert.Equal(t, pathfind.Bidirectional, cfg.Algorithm)
	assert.Equal(t, int64(-42), cfg.Seed)
	assert.Equal(t, 7, cfg.DepthLimit)
	assert.Equal(t, 500, cfg.IterationCap)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, 51, cfg.MaxDimension)
	assert.Equal(t, "uk", cfg.Language)
}

func TestFromEnv_Errors(t *testing.T) {
	cases := []struct {
		key, value string
		err        error
	}{
		{config.EnvSeed, "abc", config.ErrInvalidValue},
		{config.EnvDepthLimit, "-1", config.ErrInvalidValue},
		{config.EnvIterationCap, "1.5", config.ErrInvalidValue},
		{config.EnvMaxDimension, "-3", config.ErrInvalidValue},
		{config.EnvLogLevel, "loud", config.ErrInvalidValue},
		{config.EnvComplexity, "extreme", config.ErrInvalidComplexity},
		{config.EnvAlgorithm, "astar", pathfind.ErrUnknownAlgorithm},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			unsetAll(t)
			t.Setenv(tc.key, tc.value)
			_, err := config.FromEnv()
			require.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), tc.key, "error names the variable")
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	unsetAll(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MAZE_COMPLEXITY=easy\nMAZE_ALGORITHM=dfs\n"), 0o600))
	t.Setenv(config.EnvAlgorithm, "dijkstra")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Easy, cfg.Complexity)
	assert.Equal(t, pathfind.Dijkstra, cfg.Algorithm, "process environment wins over the file")
}

func TestLoad_MissingFile(t *testing.T) {
	unsetAll(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseComplexity(t *testing.T) {
	for in, want := range map[string]config.Complexity{
		"easy": config.Easy, " Medium ": config.Medium, "HARD": config.Hard, "": config.Medium,
	} {
		got, err := config.ParseComplexity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := config.ParseComplexity("nightmare")
	assert.ErrorIs(t, err, config.ErrInvalidComplexity)

	assert.Equal(t, 15, config.Easy.Size())
	assert.Equal(t, 25, config.Medium.Size())
	assert.Equal(t, 25, config.Complexity("other").Size())
}

func TestSearchOptions(t *testing.T) {
	cfg := config.Default()
	cfg.DepthLimit = 11
	m := mustCorridor(t)

	res, err := pathfind.FindPath(m, pathfind.DepthLimited, cfg.SearchOptions(pathfind.DepthLimited)...)
	require.NoError(t, err)
	assert.True(t, res.Found, "bound of 11 admits the 12-cell corridor")

	cfg.DepthLimit = 3
	res, err = pathfind.FindPath(m, pathfind.DepthLimited, cfg.SearchOptions(pathfind.DepthLimited)...)
	require.NoError(t, err)
	assert.False(t, res.Found)

	res, err = pathfind.FindPath(m, pathfind.DFS, cfg.SearchOptions(pathfind.DFS)...)
	require.NoError(t, err)
	assert.True(t, res.Found, "the configured bound does not reach plain dfs")
}

// mustCorridor is a 12-cell corridor with endpoints at both ends.
func mustCorridor(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.FromRows([]string{
		"##############",
		"#S..........E#",
		"##############",
	})
	require.NoError(t, err)
	return m
}
