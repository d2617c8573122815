package meraki

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// cacheFile is the on-disk envelope for cached champion data.
type cacheFile struct {
	FetchedAt time.Time `json:"fetched_at"`
	Champions Champions `json:"champions"`
}

// Cache persists champion data as a JSON file with a maximum age. An empty
// path makes every operation a no-op, forcing a CDN fetch per run.
type Cache struct {
	path   string
	maxAge time.Duration
	now    func() time.Time
}

// NewCache creates a file cache at path with the given maximum age.
func NewCache(path string, maxAge time.Duration) *Cache {
	return &Cache{path: path, maxAge: maxAge, now: time.Now}
}

// Load returns the cached champion data if present and fresh.
func (c *Cache) Load() (Champions, bool, error) {
	if c == nil || c.path == "" {
		return nil, false, nil
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read champion cache: %w", err)
	}

	var file cacheFile
	if err := json.Unmarshal(data, &file); err != nil {
		// A corrupt cache is treated as absent; the next Store rewrites it.
		return nil, false, nil
	}
	if len(file.Champions) == 0 {
		return nil, false, nil
	}
	if c.maxAge > 0 && c.now().Sub(file.FetchedAt) > c.maxAge {
		return nil, false, nil
	}
	return file.Champions, true, nil
}

// Store persists champion data with the current timestamp.
func (c *Cache) Store(champions Champions) error {
	if c == nil || c.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	data, err := json.Marshal(cacheFile{FetchedAt: c.now(), Champions: champions})
	if err != nil {
		return fmt.Errorf("encode champion cache: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write champion cache: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replace champion cache: %w", err)
	}
	return nil
}
