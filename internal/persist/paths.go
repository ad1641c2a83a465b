package persist

import (
	"os"
	"path/filepath"
)

// Data path constants used by the CLI and the snapshot adapter.
const (
	DataDirName      = ".formsmith"
	SnapshotFileName = "forms.json"
)

// DataDir returns the .formsmith directory under the given root.
func DataDir(root string) string {
	return filepath.Join(root, DataDirName)
}

// SnapshotPath returns the full snapshot file path under the root.
func SnapshotPath(root string) string {
	return filepath.Join(DataDir(root), SnapshotFileName)
}

// DefaultRoot returns the directory that holds the data dir: the
// FORMSMITH_HOME override when set, then the user's home directory,
// falling back to the working directory.
func DefaultRoot() string {
	if override := os.Getenv("FORMSMITH_HOME"); override != "" {
		return override
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// FindSnapshotPath searches upward from startDir for an existing
// data dir and returns its snapshot path. When none exists it falls
// back to the snapshot path under DefaultRoot. A FORMSMITH_HOME
// override skips the search entirely.
func FindSnapshotPath(startDir string) string {
	if override := os.Getenv("FORMSMITH_HOME"); override != "" {
		return SnapshotPath(override)
	}
	dir := startDir
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	for dir != "" {
		candidate := filepath.Join(dir, DataDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return filepath.Join(candidate, SnapshotFileName)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return SnapshotPath(DefaultRoot())
}
