package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pathmax/pathmax/pkg/errors"
	"github.com/pathmax/pathmax/pkg/solve/approx"
	"github.com/pathmax/pathmax/pkg/solve/greedy"
)

// configFileName is the config file looked up in the working directory
// and in the XDG config directory.
const configFileName = "pathmax.toml"

// Config holds solver tunables loaded from a TOML file. Command-line
// flags override config values, which override built-in defaults.
type Config struct {
	Greedy  GreedyConfig  `toml:"greedy"`
	Approx  ApproxConfig  `toml:"approx"`
	Exact   ExactConfig   `toml:"exact"`
	Compare CompareConfig `toml:"compare"`
}

// GreedyConfig tunes the randomized greedy path builder.
type GreedyConfig struct {
	Beta             float64 `toml:"beta"`
	BacktrackRetries int     `toml:"backtrack_retries"`
}

// ApproxConfig tunes the multi-strategy approximate engine.
type ApproxConfig struct {
	SeedsPerStart int `toml:"seeds_per_start"`
	Starts        int `toml:"starts"`
	Workers       int `toml:"workers"`
}

// ExactConfig tunes the exhaustive engine.
type ExactConfig struct {
	Workers int `toml:"workers"`
}

// CompareConfig tunes comparison runs.
type CompareConfig struct {
	MaxExactVertices int `toml:"max_exact_vertices"`
}

// DefaultConfig returns a config populated with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Greedy: GreedyConfig{
			Beta:             greedy.DefaultBeta,
			BacktrackRetries: greedy.DefaultBacktrackRetries,
		},
		Approx: ApproxConfig{
			SeedsPerStart: approx.DefaultSeedsPerStart,
		},
	}
}

// LoadConfig reads solver tunables from path. When path is empty, it
// searches ./pathmax.toml and then the user config directory; a missing
// file is not an error and yields the defaults. An explicit path that
// does not exist or fails to parse is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = findConfig()
		if path == "" {
			return cfg, nil
		}
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if explicit && os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key: %s", undecoded[0].String())
	}
	return cfg, nil
}

// findConfig returns the first config file found in the search path,
// or "" when none exists.
func findConfig() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}
	if dir, err := os.UserConfigDir(); err == nil {
		candidate := filepath.Join(dir, "pathmax", configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// greedyOptions converts the config into greedy solver options.
func (c *Config) greedyOptions() greedy.Options {
	return greedy.Options{
		Beta:             c.Greedy.Beta,
		BacktrackRetries: c.Greedy.BacktrackRetries,
	}
}
