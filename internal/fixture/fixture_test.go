package fixture

import (
	"context"
	"image"
	_ "image/jpeg"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Urgush/jellyork/internal/catalog"
)

func TestGenerateLayout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Generate(dir))

	assert.FileExists(t, filepath.Join(dir, "Movies", "Inception (2010)", "movie.nfo"))
	assert.FileExists(t, filepath.Join(dir, "Movies", "Inception (2010)", "poster.jpg"))
	assert.FileExists(t, filepath.Join(dir, "TV Shows", "Breaking Bad", "tvshow.nfo"))
	assert.FileExists(t, filepath.Join(dir, "TV Shows", "Breaking Bad", "season01-poster.jpg"))
	assert.FileExists(t, filepath.Join(dir, "TV Shows", "Breaking Bad", "Season 05", "S05E16.nfo"))
	assert.FileExists(t, filepath.Join(dir, "TV Shows", "Stranger Things", "Season 01", "poster.jpg"))
}

func TestGeneratePosterDecodes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Generate(dir))

	f, err := os.Open(filepath.Join(dir, "Movies", "The Matrix (1999)", "poster.jpg"))
	require.NoError(t, err)
	defer f.Close()

	img, format, err := image.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 450, img.Bounds().Dy())
}

func TestGeneratedLibraryScans(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Generate(dir))

	scanner := catalog.NewScanner(catalog.ScanConfig{},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	entities, err := scanner.Scan(context.Background(), dir)
	require.NoError(t, err)

	cat := &catalog.Catalog{Entities: entities}
	assert.Equal(t, 7, cat.Movies())
	assert.Equal(t, 2, cat.Shows())

	byTitle := make(map[string]*catalog.Entity)
	for _, e := range entities {
		byTitle[e.Title] = e
	}

	bb := byTitle["Breaking Bad"]
	require.NotNil(t, bb)
	require.Len(t, bb.Seasons, 5)
	assert.Equal(t, 16, bb.Seasons[4].EpisodeCount)
	assert.Equal(t, 68, bb.TotalEpisodes())
	// Show descriptor has no stream details; tracks were borrowed from an
	// episode descriptor.
	assert.Equal(t, []string{"English AAC 2ch", "German AAC 2ch"}, bb.AudioTracks)
	assert.NotEmpty(t, bb.Seasons[0].PosterPath)

	matrix := byTitle["The Matrix"]
	require.NotNil(t, matrix)
	assert.Equal(t, "1999", matrix.Year)
	assert.Equal(t, []string{"English", "German", "French"}, matrix.SubtitleTracks)
	assert.NotEmpty(t, matrix.PosterPath)
}
