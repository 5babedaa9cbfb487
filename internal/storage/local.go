package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// LocalGateway persists each key as a JSON file under a data directory.
type LocalGateway struct {
	dir string
	mu  sync.RWMutex
}

// NewLocal creates a local gateway rooted at dir, creating it if needed.
func NewLocal(dir string) (*LocalGateway, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &LocalGateway{dir: dir}, nil
}

// Save writes the value to a temp file and renames it into place, so readers
// never observe a partially written collection.
func (g *LocalGateway) Save(ctx context.Context, key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	path := g.path(key)
	tmp, err := os.CreateTemp(g.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads the JSON file for key into target.
func (g *LocalGateway) Load(ctx context.Context, key string, target any) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	data, err := os.ReadFile(g.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return false, &ParseError{Key: key, Err: err}
	}
	return true, nil
}

// Delete removes the file for key.
func (g *LocalGateway) Delete(ctx context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	err := os.Remove(g.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op for the local gateway.
func (g *LocalGateway) Close() error {
	return nil
}

func (g *LocalGateway) path(key string) string {
	// filepath.Base strips any path separators a caller might sneak in.
	return filepath.Join(g.dir, filepath.Base(key)+".json")
}
