package catalog

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Urgush/jellyork/internal/artwork"
)

// seasonNumberPattern extracts the season number from a directory name.
var seasonNumberPattern = regexp.MustCompile(`season\s*(\d+)`)

// ParseSeasonNumber extracts a season number from a directory name like
// "Season 01" or "season3". Matching is case-insensitive. Returns false
// when the name carries no parseable number.
func ParseSeasonNumber(name string) (int, bool) {
	m := seasonNumberPattern.FindStringSubmatch(strings.ToLower(name))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// collectSeasons discovers season subdirectories of showDir and returns
// them ascending by season number. Directories whose name does not start
// with "season", or yields no number, are skipped. When two directories
// parse to the same number, the one that resolved a poster wins; otherwise
// the first discovered stays.
func collectSeasons(showDir string, log *slog.Logger) []Season {
	entries, err := os.ReadDir(showDir)
	if err != nil {
		return nil
	}

	byNumber := make(map[int]Season)
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(strings.ToLower(e.Name()), "season") {
			continue
		}
		num, ok := ParseSeasonNumber(e.Name())
		if !ok {
			log.Debug("season directory without number, skipping",
				"dir", filepath.Join(showDir, e.Name()))
			continue
		}

		seasonDir := filepath.Join(showDir, e.Name())
		season := Season{
			Number:       num,
			EpisodeCount: countEpisodeDescriptors(seasonDir),
			PosterPath:   artwork.FindSeasonPoster(seasonDir, num, showDir),
		}

		if prev, dup := byNumber[num]; dup {
			log.Debug("duplicate season number",
				"show", showDir, "number", num)
			// Keep the earlier entry unless it lacked a poster.
			if prev.PosterPath != "" || season.PosterPath == "" {
				continue
			}
		}
		byNumber[num] = season
	}

	seasons := make([]Season, 0, len(byNumber))
	for _, s := range byNumber {
		seasons = append(seasons, s)
	}
	sort.Slice(seasons, func(i, j int) bool { return seasons[i].Number < seasons[j].Number })
	return seasons
}

// countEpisodeDescriptors counts descriptor files directly inside a season
// directory, excluding season-level descriptors (names starting with
// "season").
func countEpisodeDescriptors(seasonDir string) int {
	entries, err := os.ReadDir(seasonDir)
	if err != nil {
		return 0
	}
	count := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if !strings.HasSuffix(name, descriptorExt) || strings.HasPrefix(name, "season") {
			continue
		}
		count++
	}
	return count
}
