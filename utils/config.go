package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	Pattern             string        `json:"pattern"`
	PatternRow          int           `json:"pattern_row"`
	PatternCol          int           `json:"pattern_col"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	InjectionCount      int           `json:"injection_count"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                30,
		Cols:                60,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		Pattern:             "", // empty means random seeding
		RandomDensity:       0.15,
		Seed:                0, // zero means seed from the clock
		AutoRestart:         true,
		StagnationThreshold: 5,
		InjectionCount:      3,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
