package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"formsmith/internal/config"
	"formsmith/internal/persist"
	"formsmith/internal/store"
)

// env bundles the loaded config and store for one command run.
type env struct {
	cfg   config.Config
	store *store.Store
}

// newEnv discovers the data dir, loads config and snapshot, and
// builds the store. Persistence warnings go to stderr without
// aborting the command.
func newEnv(stderr io.Writer) (*env, error) {
	slot := persist.FindSnapshotPath("")
	cfg, err := config.Load(filepath.Join(filepath.Dir(slot), config.ConfigFileName))
	if err != nil {
		return nil, err
	}
	snapshotPath := config.ResolveSnapshotPath(cfg, "")
	s := store.New(store.Options{
		Adapter: persist.NewFileAdapter(snapshotPath),
		Warn: func(warnErr error) {
			fmt.Fprintf(stderr, "warning: snapshot not saved: %v\n", warnErr)
		},
	})
	return &env{cfg: cfg, store: s}, nil
}

// requireForm resolves a form id argument against the store.
func (e *env) requireForm(id string) (string, error) {
	if _, ok := e.store.GetForm(id); !ok {
		return "", fmt.Errorf("form %q not found", id)
	}
	return id, nil
}
