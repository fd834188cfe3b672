package cache

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// FileCache stores serialized graphs as files under a directory, the CLI
// default backend. Entries are raw graph bytes prefixed by a single header
// line carrying the expiry as unix nanoseconds (0 for no expiry); graphs are
// orders of magnitude larger than the header, so they are written as-is
// rather than wrapped in an encoding.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache rooted at dir. The directory is
// created if it does not exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get retrieves a graph from the cache. Expired or malformed entries are
// removed and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	header, data, found := bytes.Cut(raw, []byte{'\n'})
	if !found {
		_ = os.Remove(path)
		return nil, false, nil
	}
	expiry, err := strconv.ParseInt(string(header), 10, 64)
	if err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}

	if expiry != 0 && time.Now().UnixNano() > expiry {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return data, true, nil
}

// Set stores a graph with the given TTL. A zero or negative TTL stores
// without expiry.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	var expiry int64
	if ttl > 0 {
		expiry = time.Now().Add(ttl).UnixNano()
	}

	buf := make([]byte, 0, len(data)+24)
	buf = strconv.AppendInt(buf, expiry, 10)
	buf = append(buf, '\n')
	buf = append(buf, data...)

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

// Delete removes a graph from the cache. Absent keys are not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file cache.
func (c *FileCache) Close() error {
	return nil
}

// path maps a cache key to its file. Keys are hashed and sharded by the
// first two hex digits so one batch of many targets does not pile thousands
// of files into a single directory.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".graph")
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
