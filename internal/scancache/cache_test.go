package scancache

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/Urgush/jellyork/internal/nfo"
)

func setupCache(t *testing.T) *Cache {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	c, err := New(db)
	require.NoError(t, err)
	return c
}

func sampleDoc() *nfo.Document {
	return &nfo.Document{
		Kind:           nfo.KindMovie,
		Title:          "Inception",
		Year:           "2010",
		AudioTracks:    []string{"English DTS 6ch"},
		SubtitleTracks: []string{"English", "German"},
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c := setupCache(t)
	mtime := time.Now()

	require.NoError(t, c.Put("/lib/movie.nfo", mtime, 512, sampleDoc()))

	got, ok := c.Get("/lib/movie.nfo", mtime, 512)
	require.True(t, ok)
	assert.Equal(t, sampleDoc(), got)
}

func TestCacheMiss(t *testing.T) {
	c := setupCache(t)

	_, ok := c.Get("/lib/absent.nfo", time.Now(), 1)
	assert.False(t, ok)
}

func TestCacheFingerprintMismatch(t *testing.T) {
	c := setupCache(t)
	mtime := time.Now()
	require.NoError(t, c.Put("/lib/movie.nfo", mtime, 512, sampleDoc()))

	_, ok := c.Get("/lib/movie.nfo", mtime.Add(time.Second), 512)
	assert.False(t, ok, "changed mtime must invalidate")

	_, ok = c.Get("/lib/movie.nfo", mtime, 513)
	assert.False(t, ok, "changed size must invalidate")
}

func TestCacheOverwrite(t *testing.T) {
	c := setupCache(t)
	mtime := time.Now()
	require.NoError(t, c.Put("/lib/movie.nfo", mtime, 512, sampleDoc()))

	updated := sampleDoc()
	updated.Title = "Inception (Director's Cut)"
	newMtime := mtime.Add(time.Minute)
	require.NoError(t, c.Put("/lib/movie.nfo", newMtime, 600, updated))

	got, ok := c.Get("/lib/movie.nfo", newMtime, 600)
	require.True(t, ok)
	assert.Equal(t, "Inception (Director's Cut)", got.Title)
}

func TestCachePrune(t *testing.T) {
	c := setupCache(t)
	require.NoError(t, c.Put("/lib/movie.nfo", time.Now(), 512, sampleDoc()))

	removed, err := c.Prune(time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed, "fresh entries survive")

	removed, err = c.Prune(0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	_, ok := c.Get("/lib/movie.nfo", time.Now(), 512)
	assert.False(t, ok)
}
