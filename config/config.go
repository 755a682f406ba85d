// Package config holds the pathstep CLI settings.
//
// Precedence, lowest first: Default, YAML file, PATHSTEP_* environment
// variables, then command-line flags (applied by the caller). Validate runs
// last, on the merged result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathstep/logging"
	"github.com/katalvlaran/pathstep/search"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the run configuration.
type Config struct {
	// Graph is the path of the graph description file.
	Graph string `yaml:"graph" validate:"required"`

	// Algorithm is anything search.ParseAlgorithm accepts.
	Algorithm string `yaml:"algorithm" validate:"required,algorithm"`

	// Start and Goal are node ids; 0 selects the first and last node.
	Start int `yaml:"start" validate:"gte=0"`
	Goal  int `yaml:"goal" validate:"gte=0"`

	// LogLevel is one of debug, info, warn, error, disable.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error disable"`

	// MaxSteps stops a run after that many observations; 0 means no limit.
	MaxSteps int `yaml:"max_steps" validate:"gte=0"`

	// Verify cross-checks the result against the Dijkstra oracle.
	Verify bool `yaml:"verify"`

	// Metrics prints the Prometheus counters after the run.
	Metrics bool `yaml:"metrics"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("algorithm", validateAlgorithm)
}

func validateAlgorithm(fl validator.FieldLevel) bool {
	_, err := search.ParseAlgorithm(fl.Field().String())
	return err == nil
}

// Default returns A*, info logging and no step limit. Graph is unset.
func Default() Config {
	return Config{
		Algorithm: search.AStar.String(),
		LogLevel:  logging.LevelInfo.String(),
	}
}

// Load returns Default overlaid with the YAML file at path (if non-empty)
// and then with PATHSTEP_* environment variables. It does not validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overlays PATHSTEP_* variables. An unparsable numeric or boolean
// value is an error naming the variable.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("PATHSTEP_GRAPH"); v != "" {
		cfg.Graph = v
	}
	if v := os.Getenv("PATHSTEP_ALGORITHM"); v != "" {
		cfg.Algorithm = v
	}
	if v := os.Getenv("PATHSTEP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	for _, iv := range []struct {
		name string
		dst  *int
	}{
		{"PATHSTEP_START", &cfg.Start},
		{"PATHSTEP_GOAL", &cfg.Goal},
		{"PATHSTEP_MAX_STEPS", &cfg.MaxSteps},
	} {
		if v := os.Getenv(iv.name); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("config: %s=%q: %w", iv.name, v, err)
			}
			*iv.dst = i
		}
	}
	for _, bv := range []struct {
		name string
		dst  *bool
	}{
		{"PATHSTEP_VERIFY", &cfg.Verify},
		{"PATHSTEP_METRICS", &cfg.Metrics},
	} {
		if v := os.Getenv(bv.name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("config: %s=%q: %w", bv.name, v, err)
			}
			*bv.dst = b
		}
	}

	return nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// SearchAlgorithm returns the parsed Algorithm. Call after Validate.
func (c Config) SearchAlgorithm() search.Algorithm {
	a, _ := search.ParseAlgorithm(c.Algorithm)
	return a
}

// Level returns the parsed log level, LevelInfo if unparsable.
func (c Config) Level() logging.Level {
	l, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.LevelInfo
	}

	return l
}
