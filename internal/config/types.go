package config

// Config is the parsed .formsmith/config.yml.
type Config struct {
	Version      int      `yaml:"version"`
	SnapshotPath string   `yaml:"snapshot_path"`
	UI           UIConfig `yaml:"ui"`
}

// UIConfig controls how the view layer renders.
type UIConfig struct {
	// Mode selects the screen style: auto, live, or plain.
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// CurrentVersion is the config payload version written by scaffold.
const CurrentVersion = 1
