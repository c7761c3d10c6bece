// Package scancache provides a SQLite-backed cache of parsed descriptors.
//
// Entries are keyed by descriptor path and fingerprinted with the file's
// mtime and size, so a re-scan only pays the XML parse cost for files that
// changed. The cache stores parsed descriptor fields, never the assembled
// entities; those are rebuilt on every scan.
package scancache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Urgush/jellyork/internal/nfo"
)

const schema = `
CREATE TABLE IF NOT EXISTS scan_cache (
	path      TEXT PRIMARY KEY,
	mtime_ns  INTEGER NOT NULL,
	size      INTEGER NOT NULL,
	doc       TEXT NOT NULL,
	cached_at TIMESTAMP NOT NULL
);`

// Cache is a descriptor parse cache over a SQLite database.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	c, err := New(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

// New wraps an existing database handle, creating the schema if missing.
func New(db *sql.DB) (*Cache, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Get retrieves the cached document for path. Returns ok=false on a miss,
// a fingerprint mismatch, or any read failure; a stale or broken entry is
// simply re-parsed by the caller.
func (c *Cache) Get(path string, mtime time.Time, size int64) (*nfo.Document, bool) {
	var (
		cachedMtime int64
		cachedSize  int64
		raw         string
	)
	err := c.db.QueryRow(
		"SELECT mtime_ns, size, doc FROM scan_cache WHERE path = ?", path,
	).Scan(&cachedMtime, &cachedSize, &raw)
	if err != nil {
		return nil, false
	}
	if cachedMtime != mtime.UnixNano() || cachedSize != size {
		return nil, false
	}

	var doc nfo.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, false
	}
	return &doc, true
}

// Put stores the parsed document for path with its file fingerprint.
func (c *Cache) Put(path string, mtime time.Time, size int64, doc *nfo.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	_, err = c.db.Exec(
		`INSERT INTO scan_cache (path, mtime_ns, size, doc, cached_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
		   mtime_ns = excluded.mtime_ns,
		   size = excluded.size,
		   doc = excluded.doc,
		   cached_at = excluded.cached_at`,
		path, mtime.UnixNano(), size, string(raw), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

// Prune removes entries not refreshed within maxAge.
// Returns the number of entries removed.
func (c *Cache) Prune(maxAge time.Duration) (int64, error) {
	result, err := c.db.Exec(
		"DELETE FROM scan_cache WHERE cached_at < ?", time.Now().Add(-maxAge),
	)
	if err != nil {
		return 0, fmt.Errorf("cache prune: %w", err)
	}
	return result.RowsAffected()
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
