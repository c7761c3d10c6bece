// Package artwork locates poster images for media directories.
//
// Resolution follows the Jellyfin naming conventions: a prioritized list of
// canonical filenames, then a first-image fallback by extension priority.
// A missing poster is not an error; callers get an empty path.
package artwork

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// posterNames are the canonical poster filenames, in priority order.
var posterNames = []string{
	"poster.jpg", "poster.png",
	"folder.jpg", "folder.png",
	"cover.jpg", "cover.png",
}

// imageExts is the extension priority for the first-image fallback.
var imageExts = []string{".jpg", ".jpeg", ".png"}

// FindPoster returns the best-matching poster in dir, or "" when none exists.
// A nonexistent directory yields "".
func FindPoster(dir string) string {
	for _, name := range posterNames {
		p := filepath.Join(dir, name)
		if fileExists(p) {
			return p
		}
	}
	return firstImage(dir)
}

// FindSeasonPoster resolves artwork for season number n of the show at
// showDir, where seasonDir is the season's own directory. Search order:
//
//  1. seasonNN-poster / seasonN-poster / season-NN-poster in the show
//     directory (the Jellyfin convention for season artwork),
//  2. poster / folder / seasonNN-poster in the season directory,
//  3. first image inside the season directory.
//
// Returns "" when nothing matches.
func FindSeasonPoster(seasonDir string, n int, showDir string) string {
	showNames := []string{
		fmt.Sprintf("season%02d-poster.jpg", n),
		fmt.Sprintf("season%02d-poster.png", n),
		fmt.Sprintf("season%d-poster.jpg", n),
		fmt.Sprintf("season%d-poster.png", n),
		fmt.Sprintf("season-%02d-poster.jpg", n),
		fmt.Sprintf("season-%02d-poster.png", n),
	}
	for _, name := range showNames {
		p := filepath.Join(showDir, name)
		if fileExists(p) {
			return p
		}
	}

	seasonNames := []string{
		"poster.jpg", "poster.png",
		"folder.jpg", "folder.png",
		fmt.Sprintf("season%02d-poster.jpg", n),
		fmt.Sprintf("season%02d-poster.png", n),
	}
	for _, name := range seasonNames {
		p := filepath.Join(seasonDir, name)
		if fileExists(p) {
			return p
		}
	}

	return firstImage(seasonDir)
}

// firstImage returns the lexicographically first image file in dir,
// preferring .jpg over .jpeg over .png.
func firstImage(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, ext := range imageExts {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(e.Name()), ext) {
				return filepath.Join(dir, e.Name())
			}
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
