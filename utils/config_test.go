package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	if config.Rows != DefaultConfig().Rows || config.Cols != DefaultConfig().Cols {
		t.Fatalf("missing file did not return defaults: %+v", config)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{"rows": 12, "cols": 24, "pattern": "glider", "pattern_row": 2, "pattern_col": 3, "seed": 99, "random_density": 0.4}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Rows != 12 || config.Cols != 24 {
		t.Fatalf("dimensions = %dx%d, expected 12x24", config.Rows, config.Cols)
	}
	if config.Pattern != "glider" || config.PatternRow != 2 || config.PatternCol != 3 {
		t.Fatalf("pattern fields not loaded: %+v", config)
	}
	if config.Seed != 99 || config.RandomDensity != 0.4 {
		t.Fatalf("seed/density not loaded: %+v", config)
	}

	// Untouched fields keep their defaults
	if config.FrameRate != 150*time.Millisecond {
		t.Fatalf("frame rate default lost: %v", config.FrameRate)
	}
}

func TestLoadConfigMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
