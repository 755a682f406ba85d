package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/config"
	"github.com/katalvlaran/pathstep/logging"
	"github.com/katalvlaran/pathstep/search"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathstep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, search.AStar, cfg.SearchAlgorithm())
	assert.Equal(t, logging.LevelInfo, cfg.Level())
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid, "graph is required")

	cfg.Graph = "maze.txt"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
graph: maze.txt
algorithm: gbfs
start: 2
goal: 7
log_level: debug
max_steps: 50
verify: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.Config{
		Graph:     "maze.txt",
		Algorithm: "gbfs",
		Start:     2,
		Goal:      7,
		LogLevel:  "debug",
		MaxSteps:  50,
		Verify:    true,
	}, cfg)
	assert.Equal(t, search.GBFS, cfg.SearchAlgorithm())
	assert.Equal(t, logging.LevelDebug, cfg.Level())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "graph: g.txt\n"))
	require.NoError(t, err)
	assert.Equal(t, "A*", cfg.Algorithm)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("PATHSTEP_ALGORITHM", "greedy")
	t.Setenv("PATHSTEP_MAX_STEPS", "9")
	t.Setenv("PATHSTEP_LOG_LEVEL", "warn")

	cfg, err := config.Load(writeFile(t, "graph: g.txt\nalgorithm: astar\nmax_steps: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, "greedy", cfg.Algorithm)
	assert.Equal(t, 9, cfg.MaxSteps)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "g.txt", cfg.Graph)
}

func TestLoad_EnvEndpointsAndSwitches(t *testing.T) {
	t.Setenv("PATHSTEP_START", "4")
	t.Setenv("PATHSTEP_GOAL", "11")
	t.Setenv("PATHSTEP_VERIFY", "true")
	t.Setenv("PATHSTEP_METRICS", "1")

	cfg, err := config.Load(writeFile(t, "graph: g.txt\nstart: 1\ngoal: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Start)
	assert.Equal(t, 11, cfg.Goal)
	assert.True(t, cfg.Verify)
	assert.True(t, cfg.Metrics)
}

func TestLoad_MalformedEnv(t *testing.T) {
	cases := []struct{ name, value string }{
		{"PATHSTEP_MAX_STEPS", "ten"},
		{"PATHSTEP_START", "1.5"},
		{"PATHSTEP_GOAL", "x"},
		{"PATHSTEP_VERIFY", "maybe"},
		{"PATHSTEP_METRICS", "on"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.name, tc.value)
			_, err := config.Load("")
			require.Error(t, err)
			assert.ErrorIs(t, err, strconv.ErrSyntax)
			assert.Contains(t, err.Error(), tc.name)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "graph: [unterminated\n"))
	assert.Error(t, err)
}

func TestValidate_Fields(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*config.Config)
		field string
	}{
		{"unknown algorithm", func(c *config.Config) { c.Algorithm = "dfs" }, "Algorithm"},
		{"negative start", func(c *config.Config) { c.Start = -1 }, "Start"},
		{"negative goal", func(c *config.Config) { c.Goal = -4 }, "Goal"},
		{"bad log level", func(c *config.Config) { c.LogLevel = "loud" }, "LogLevel"},
		{"negative max steps", func(c *config.Config) { c.MaxSteps = -1 }, "MaxSteps"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Graph = "g.txt"
			tc.edit(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalid)
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tc.field, verrs[0].Field())
		})
	}
}
