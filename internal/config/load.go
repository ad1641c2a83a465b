// Package config loads the optional .formsmith/config.yml. A missing
// file is not an error: the CLI runs on defaults, and init scaffolds
// a starting config for users who want overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"formsmith/internal/persist"
)

// ConfigFileName is the config file within the data directory.
const ConfigFileName = "config.yml"

// ConfigPath returns the full config file path under a root.
func ConfigPath(root string) string {
	return filepath.Join(persist.DataDir(root), ConfigFileName)
}

// Load reads, parses, normalizes, and validates a config file. A
// missing file yields the defaulted zero config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Config{}
			Normalize(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize fills defaults for unset fields.
func Normalize(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = "auto"
	}
	cfg.SnapshotPath = strings.TrimSpace(cfg.SnapshotPath)
}

// Validate rejects values the CLI cannot act on.
func Validate(cfg *Config) error {
	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		return fmt.Errorf("config: invalid ui.mode %q (expected auto|live|plain)", cfg.UI.Mode)
	}
	if cfg.Version > CurrentVersion {
		return fmt.Errorf("config: version %d is newer than this build supports (%d)", cfg.Version, CurrentVersion)
	}
	return nil
}

// ResolveSnapshotPath picks the snapshot file: an explicit config
// override wins, otherwise the discovered or default slot.
func ResolveSnapshotPath(cfg Config, startDir string) string {
	if cfg.SnapshotPath != "" {
		if abs, err := filepath.Abs(cfg.SnapshotPath); err == nil {
			return abs
		}
		return cfg.SnapshotPath
	}
	return persist.FindSnapshotPath(startDir)
}
