// Package persist reads and writes the durable snapshot slot. Load is
// tolerant: absent, unreadable, or malformed data yields the empty
// default snapshot instead of an error, so the store always starts.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"formsmith/internal/form"
)

// Adapter loads and saves whole store snapshots.
type Adapter interface {
	// Load returns the persisted snapshot, or the empty default when
	// the slot is absent or unreadable. It never fails.
	Load() form.Snapshot
	// Save serializes and writes the full snapshot, overwriting prior
	// content. A failed write leaves in-memory state authoritative.
	Save(snapshot form.Snapshot) error
}

// FileAdapter persists snapshots as a JSON file, replaced atomically
// on every save.
type FileAdapter struct {
	path string
}

// NewFileAdapter returns an adapter writing to the given file path.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

// Path returns the snapshot file path.
func (a *FileAdapter) Path() string {
	return a.path
}

// Load reads the snapshot file. Any failure, including a payload that
// does not decode, returns the empty default snapshot.
func (a *FileAdapter) Load() form.Snapshot {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return emptySnapshot()
	}
	return DecodeSnapshot(data)
}

// Save writes the snapshot to a temp file in the target directory and
// renames it over the slot, creating the directory if needed.
func (a *FileAdapter) Save(snapshot form.Snapshot) error {
	snapshot.Version = form.SnapshotVersion
	data, err := EncodeSnapshot(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	dir := filepath.Dir(a.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, SnapshotFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, a.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// EncodeSnapshot serializes a snapshot as indented JSON.
func EncodeSnapshot(snapshot form.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snapshot, "", "  ")
}

// DecodeSnapshot parses snapshot bytes. Unknown fields are ignored
// and missing fields keep their defaults; a payload that fails to
// decode yields the empty default snapshot.
func DecodeSnapshot(data []byte) form.Snapshot {
	var snapshot form.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return emptySnapshot()
	}
	if snapshot.Forms == nil {
		snapshot.Forms = []form.Form{}
	}
	if snapshot.Responses == nil {
		snapshot.Responses = []form.Response{}
	}
	return snapshot
}

// emptySnapshot is the default state for a missing or broken slot.
func emptySnapshot() form.Snapshot {
	return form.Snapshot{
		Version:   form.SnapshotVersion,
		Forms:     []form.Form{},
		Responses: []form.Response{},
	}
}

// MemoryAdapter keeps the last saved snapshot in memory. Used by
// tests and as a fallback when no durable slot is configured.
type MemoryAdapter struct {
	snapshot form.Snapshot
	saved    bool
	// FailSaves makes Save return an error without storing, to
	// exercise persistence-failure handling.
	FailSaves bool
}

// Load returns the last saved snapshot or the empty default.
func (a *MemoryAdapter) Load() form.Snapshot {
	if !a.saved {
		return emptySnapshot()
	}
	return a.snapshot.Clone()
}

// Save stores a deep copy of the snapshot.
func (a *MemoryAdapter) Save(snapshot form.Snapshot) error {
	if a.FailSaves {
		return fmt.Errorf("memory adapter: saves disabled")
	}
	snapshot.Version = form.SnapshotVersion
	a.snapshot = snapshot.Clone()
	a.saved = true
	return nil
}
