// Package nfo parses Jellyfin/Kodi NFO descriptor files.
//
// A descriptor is a small XML document whose root element names the media
// kind: <movie>, <tvshow>, or <episodedetails>. Parse decodes one file into
// a Document with title, year, description, and display-ready audio and
// subtitle track lists. Classification by root tag is authoritative; the
// filename heuristics in ClassifyName are only a cheap pre-filter so that
// episode descriptors can be skipped without opening them.
package nfo

import (
	"encoding/xml"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/Urgush/jellyork/internal/language"
)

// Kind is the closed set of descriptor classifications.
type Kind int

const (
	KindUnknown Kind = iota
	KindMovie
	KindShow
	KindEpisode
)

func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindShow:
		return "show"
	case KindEpisode:
		return "episode"
	default:
		return "unknown"
	}
}

// Document is the parsed form of a single descriptor file.
type Document struct {
	Kind           Kind     `json:"kind"`
	Title          string   `json:"title,omitempty"`
	Year           string   `json:"year,omitempty"`
	Description    string   `json:"description,omitempty"`
	AudioTracks    []string `json:"audio_tracks,omitempty"`
	SubtitleTracks []string `json:"subtitle_tracks,omitempty"`
}

// HasTracks reports whether the document carries any audio or subtitle tracks.
func (d *Document) HasTracks() bool {
	return len(d.AudioTracks) > 0 || len(d.SubtitleTracks) > 0
}

// descriptor mirrors the NFO XML schema. The root element name is captured
// via XMLName; all known roots share the same child shape.
type descriptor struct {
	XMLName  xml.Name
	Title    string `xml:"title"`
	Year     string `xml:"year"`
	Plot     string `xml:"plot"`
	Outline  string `xml:"outline"`
	Overview string `xml:"overview"`
	FileInfo struct {
		StreamDetails struct {
			Audio     []audioStream    `xml:"audio"`
			Subtitles []subtitleStream `xml:"subtitle"`
		} `xml:"streamdetails"`
	} `xml:"fileinfo"`
}

type audioStream struct {
	Language string `xml:"language"`
	Codec    string `xml:"codec"`
	Channels string `xml:"channels"`
}

type subtitleStream struct {
	Language string `xml:"language"`
}

// episodeNamePattern matches episode descriptor filenames like S01E01.nfo.
var episodeNamePattern = regexp.MustCompile(`(?i)^s\d{1,2}e\d{1,3}`)

// ClassifyName classifies a descriptor by filename alone. Only two names
// are conclusive: tvshow.<ext> is a show descriptor and an S<NN>E<NN> prefix
// marks an episode. Everything else is KindUnknown and needs Parse to
// inspect the root tag.
func ClassifyName(name string) Kind {
	base := strings.ToLower(name)
	if ext := strings.LastIndex(base, "."); ext > 0 && base[:ext] == "tvshow" {
		return KindShow
	}
	if episodeNamePattern.MatchString(base) {
		return KindEpisode
	}
	return KindUnknown
}

// Parse reads and decodes one descriptor file.
// Structurally invalid XML yields an error wrapping ErrMalformed; callers
// skip the file and keep scanning.
func Parse(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor %s: %w", path, err)
	}

	var d descriptor
	if err := xml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("descriptor %s: %w: %v", path, ErrMalformed, err)
	}

	doc := &Document{
		Kind:        kindFromRoot(d.XMLName.Local),
		Title:       strings.TrimSpace(d.Title),
		Year:        strings.TrimSpace(d.Year),
		Description: firstNonEmpty(d.Plot, d.Outline, d.Overview),
	}

	for _, a := range d.FileInfo.StreamDetails.Audio {
		if track := audioDisplay(a); track != "" {
			doc.AudioTracks = append(doc.AudioTracks, track)
		}
	}

	seen := make(map[string]bool)
	for _, s := range d.FileInfo.StreamDetails.Subtitles {
		lang := strings.TrimSpace(s.Language)
		if lang == "" {
			continue
		}
		display := language.Normalize(lang)
		if !seen[display] {
			seen[display] = true
			doc.SubtitleTracks = append(doc.SubtitleTracks, display)
		}
	}

	return doc, nil
}

func kindFromRoot(tag string) Kind {
	switch tag {
	case "movie":
		return KindMovie
	case "tvshow":
		return KindShow
	case "episodedetails":
		return KindEpisode
	default:
		return KindUnknown
	}
}

// audioDisplay builds the display string for one audio stream from up to
// three fields: language name, upper-cased codec, channel count with a "ch"
// suffix. Absent fields are omitted; an empty stream yields "".
func audioDisplay(a audioStream) string {
	var parts []string
	if lang := strings.TrimSpace(a.Language); lang != "" {
		parts = append(parts, language.Normalize(lang))
	}
	if codec := strings.TrimSpace(a.Codec); codec != "" {
		parts = append(parts, strings.ToUpper(codec))
	}
	if ch := strings.TrimSpace(a.Channels); ch != "" {
		parts = append(parts, ch+"ch")
	}
	return strings.Join(parts, " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
