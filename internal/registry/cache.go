package registry

import (
	"os"
	"sync"
)

// StatusCache persists theme refresh results between sessions.
type StatusCache struct {
	path     string
	mu       sync.RWMutex
	version  string
	statuses map[string]CachedStatus
}

// NewStatusCache opens the cache at path, starting empty when the file does
// not exist yet.
func NewStatusCache(path string) (*StatusCache, error) {
	c := &StatusCache{
		path:     path,
		version:  fileVersion,
		statuses: make(map[string]CachedStatus),
	}

	if err := ensureDir(path); err != nil {
		return nil, err
	}

	if err := c.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return c, nil
}

// Load reads the cache from disk.
func (c *StatusCache) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var file StatusCacheFile
	if err := readJSON(c.path, &file); err != nil {
		return err
	}

	c.version = file.Version
	c.statuses = file.Statuses
	if c.statuses == nil {
		c.statuses = make(map[string]CachedStatus)
	}
	return nil
}

// Save writes the cache to disk atomically.
func (c *StatusCache) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return writeJSON(c.path, StatusCacheFile{Version: c.version, Statuses: c.statuses})
}

// Get returns the cached status for id.
func (c *StatusCache) Get(id string) (CachedStatus, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status, ok := c.statuses[id]
	return status, ok
}

// Set records the status for id.
func (c *StatusCache) Set(id string, status CachedStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.statuses[id] = status
}

// Invalidate drops the cached status for id.
func (c *StatusCache) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.statuses, id)
}

// InvalidateAll drops every cached status.
func (c *StatusCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.statuses = make(map[string]CachedStatus)
}
