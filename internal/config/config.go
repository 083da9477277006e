package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FamilyWindows holds the line-window sizes for one property family. A zero
// value disables the corresponding search.
type FamilyWindows struct {
	EIDLookback    int `yaml:"eid_lookback"`    // backward lines scanned for an element id
	ResourceWindow int `yaml:"resource_window"` // forward lines scanned for a resource anchor
	ContentWindow  int `yaml:"content_window"`  // symmetric window for content anchoring
}

type Config struct {
	History struct {
		Path string `yaml:"path"`
	} `yaml:"history"`
	Windows struct {
		BreakInside FamilyWindows `yaml:"break_inside"`
		YJBreak     FamilyWindows `yaml:"yj_break"`
		Margins     FamilyWindows `yaml:"margins"`
	} `yaml:"windows"`
}

// Default returns the window sizes the upstream dump layout is known to need.
// Content windows must be wide enough to bridge the reordering introduced by
// differing storyline splits between builds.
func Default() *Config {
	cfg := &Config{}
	cfg.Windows.BreakInside = FamilyWindows{EIDLookback: 20, ContentWindow: 120}
	cfg.Windows.YJBreak = FamilyWindows{EIDLookback: 31, ResourceWindow: 20, ContentWindow: 200}
	cfg.Windows.Margins = FamilyWindows{ContentWindow: 5}
	return cfg
}

// Load reads the optional YAML config, falling back to defaults when the file
// does not exist. Environment variables override both.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config over the defaults
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if dbPath := os.Getenv("KFXCOMPARE_DB"); dbPath != "" {
		cfg.History.Path = dbPath
	}

	return cfg, nil
}
