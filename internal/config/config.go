// Package config loads the grist command-line configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sky-flux/grist/yeast"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "GRIST_CONFIG"

// ErrUnknownKey is returned when a config file sets keys grist does not know.
var ErrUnknownKey = errors.New("config: unknown key")

// Config is the on-disk configuration. Every field is optional.
type Config struct {
	// Starter holds the defaults for starter planning.
	Starter yeast.PlannerConfig `toml:"starter"`

	// Brewhouse describes the usual batch.
	Brewhouse Brewhouse `toml:"brewhouse"`
}

// Brewhouse holds batch-level defaults.
type Brewhouse struct {
	// Gallons is the usual finished batch volume.
	Gallons float64 `toml:"gallons"`

	// Efficiency is the brewhouse efficiency, in percent.
	Efficiency float64 `toml:"efficiency"`

	// PitchRate is the usual pitch rate, in million cells per mL per °P.
	PitchRate float64 `toml:"pitch_rate"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Starter: yeast.PlannerConfig{
			Gravity:          yeast.DefaultStarterGravity,
			MaxGallons:       yeast.DefaultMaxGallons,
			MaxGrowthPerStep: yeast.DefaultMaxGrowthPerStep,
		},
		Brewhouse: Brewhouse{
			Gallons:    5,
			Efficiency: 72,
			PitchRate:  0.75,
		},
	}
}

// Path returns the config file location: $GRIST_CONFIG if set, otherwise
// grist/config.toml under the user config directory.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "grist", "config.toml")
}

// Load reads the config file at path over the defaults. A missing file (or an
// empty path) yields Default. Keys the file sets override the defaults; keys
// it omits keep them.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}

	// Reject starter values the planner would refuse now, not at first use.
	if _, err := yeast.NewPlanner(cfg.Starter); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Planner builds a starter planner from the [starter] section.
func (c Config) Planner() (*yeast.Planner, error) {
	return yeast.NewPlanner(c.Starter)
}
