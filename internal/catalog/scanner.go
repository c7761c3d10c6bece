package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Urgush/jellyork/internal/artwork"
	"github.com/Urgush/jellyork/internal/nfo"
	"github.com/Urgush/jellyork/internal/scancache"
)

// descriptorExt is the file extension of descriptor files.
const descriptorExt = ".nfo"

// ScanConfig tunes a Scanner.
type ScanConfig struct {
	// Cache, when set, short-circuits parsing for descriptors whose
	// mtime and size are unchanged since the last scan. Cache failures
	// degrade to a plain parse.
	Cache *scancache.Cache

	// Workers bounds the parallel descriptor-parse stage. Values below 1
	// mean sequential. Results are merged at stable indices, so the
	// entity order is deterministic regardless of worker count.
	Workers int
}

// Scanner walks a library tree and assembles the entity collection.
type Scanner struct {
	cfg ScanConfig
	log *slog.Logger
}

// NewScanner creates a scanner. A nil logger falls back to slog.Default.
func NewScanner(cfg ScanConfig, log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Scanner{cfg: cfg, log: log.With("component", "scanner")}
}

// Scan walks root and returns all movie and show entities in discovery
// order (movies first, then shows). Individual descriptor failures are
// logged and skipped; only an unreadable root aborts the scan. A completed
// scan with zero entities returns ErrEmptyLibrary.
func (s *Scanner) Scan(ctx context.Context, root string) ([]*Entity, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}

	paths, err := s.findDescriptors(root)
	if err != nil {
		return nil, fmt.Errorf("walk library: %w", err)
	}
	s.log.Info("library walk complete", "root", root, "descriptors", len(paths))

	// Filename classification first: tvshow.<ext> and S<NN>E<NN> names are
	// conclusive without opening the file. Everything else needs its root
	// tag inspected.
	var showIdx, openIdx []int
	episodes := 0
	for i, p := range paths {
		switch nfo.ClassifyName(filepath.Base(p)) {
		case nfo.KindShow:
			showIdx = append(showIdx, i)
		case nfo.KindEpisode:
			episodes++
		default:
			openIdx = append(openIdx, i)
		}
	}

	docs, err := s.parseAll(ctx, paths, openIdx)
	if err != nil {
		return nil, err
	}

	var entities []*Entity
	for _, i := range openIdx {
		doc := docs[i]
		if doc == nil {
			continue // parse failure, already logged
		}
		switch doc.Kind {
		case nfo.KindMovie:
			entities = append(entities, s.buildMovie(paths[i], doc))
		case nfo.KindShow:
			// Show descriptor under a nonstandard filename; the root
			// tag is authoritative.
			showIdx = append(showIdx, i)
		case nfo.KindEpisode:
			episodes++
		default:
			s.log.Warn("descriptor with unknown root, skipping", "path", paths[i])
		}
	}

	sort.Ints(showIdx)
	for _, i := range showIdx {
		doc := docs[i]
		if doc == nil {
			parsed, err := s.parseDescriptor(paths[i])
			if err != nil {
				s.log.Warn("skipping show descriptor", "path", paths[i], "error", err)
				continue
			}
			doc = parsed
		}
		entities = append(entities, s.buildShow(paths[i], doc))
	}

	s.log.Info("scan complete",
		"entities", len(entities),
		"episode_descriptors", episodes,
	)
	if len(entities) == 0 {
		return nil, ErrEmptyLibrary
	}
	return entities, nil
}

// findDescriptors walks root and collects descriptor paths in walk order.
func (s *Scanner) findDescriptors(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			s.log.Warn("unreadable path, skipping", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), descriptorExt) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// parseAll parses the descriptors at the given indices, bounded by the
// configured worker count. Parse failures leave a nil slot and a logged
// reason; only context cancellation aborts.
func (s *Scanner) parseAll(ctx context.Context, paths []string, idx []int) ([]*nfo.Document, error) {
	docs := make([]*nfo.Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for _, i := range idx {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := s.parseDescriptor(paths[i])
			if err != nil {
				s.log.Warn("skipping descriptor", "path", paths[i], "error", err)
				return nil
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan aborted: %w", err)
	}
	return docs, nil
}

// parseDescriptor parses one descriptor, consulting the cache when
// configured.
func (s *Scanner) parseDescriptor(path string) (*nfo.Document, error) {
	if s.cfg.Cache == nil {
		return nfo.Parse(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat descriptor: %w", err)
	}
	if doc, ok := s.cfg.Cache.Get(path, info.ModTime(), info.Size()); ok {
		return doc, nil
	}

	doc, err := nfo.Parse(path)
	if err != nil {
		return nil, err
	}
	if err := s.cfg.Cache.Put(path, info.ModTime(), info.Size(), doc); err != nil {
		s.log.Debug("cache write failed", "path", path, "error", err)
	}
	return doc, nil
}

func (s *Scanner) buildMovie(path string, doc *nfo.Document) *Entity {
	return &Entity{
		Title:          orUnknown(doc.Title),
		Year:           doc.Year,
		Description:    doc.Description,
		Category:       CategoryMovie,
		PosterPath:     artwork.FindPoster(filepath.Dir(path)),
		DescriptorPath: path,
		AudioTracks:    doc.AudioTracks,
		SubtitleTracks: doc.SubtitleTracks,
	}
}

func (s *Scanner) buildShow(path string, doc *nfo.Document) *Entity {
	showDir := filepath.Dir(path)
	seasons := collectSeasons(showDir, s.log)

	audio, subtitles := doc.AudioTracks, doc.SubtitleTracks
	if !doc.HasTracks() && len(seasons) > 0 {
		// Show descriptors usually carry no stream details; borrow them
		// from the first episode of the first season.
		if ep := s.firstEpisodeDoc(showDir, seasons[0].Number); ep != nil {
			audio, subtitles = ep.AudioTracks, ep.SubtitleTracks
		}
	}

	return &Entity{
		Title:          orUnknown(doc.Title),
		Year:           doc.Year,
		Description:    doc.Description,
		Category:       CategoryShow,
		PosterPath:     artwork.FindPoster(showDir),
		DescriptorPath: path,
		AudioTracks:    audio,
		SubtitleTracks: subtitles,
		Seasons:        seasons,
	}
}

// firstEpisodeDoc parses the first episode descriptor in the season
// directory for the given number, trying the zero-padded directory name
// before the unpadded one. Any failure is silent; the caller keeps empty
// tracks.
func (s *Scanner) firstEpisodeDoc(showDir string, number int) *nfo.Document {
	seasonDir := filepath.Join(showDir, fmt.Sprintf("Season %02d", number))
	if _, err := os.Stat(seasonDir); err != nil {
		seasonDir = filepath.Join(showDir, fmt.Sprintf("Season %d", number))
	}

	entries, err := os.ReadDir(seasonDir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if !strings.HasSuffix(name, descriptorExt) || strings.HasPrefix(name, "season") {
			continue
		}
		doc, err := s.parseDescriptor(filepath.Join(seasonDir, e.Name()))
		if err != nil {
			s.log.Debug("episode track fallback failed", "path", filepath.Join(seasonDir, e.Name()), "error", err)
			return nil
		}
		return doc
	}
	return nil
}

func orUnknown(title string) string {
	if title == "" {
		return "Unknown"
	}
	return title
}
