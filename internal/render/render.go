// Package render produces the catalog document from a scanned library.
//
// The renderer is a collaborator of the scan pipeline: it consumes the
// final, ordered entity sequence (plus the sort method that produced the
// order) and writes a paginated document. TextRenderer is the built-in
// implementation; anything else that can consume a catalog satisfies
// Renderer.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Urgush/jellyork/internal/catalog"
)

//go:generate mockgen -source=render.go -destination=mocks/renderer.go -package=mocks

// Renderer writes a catalog document to w.
type Renderer interface {
	Render(w io.Writer, cat *catalog.Catalog) error
}

// TextRenderer renders the catalog as a plain-text document with a title
// page, a statistics table, and one block per entity, paginated every
// ItemsPerPage entities.
type TextRenderer struct {
	ItemsPerPage int

	// now is swapped in tests for a stable generation date.
	now func() time.Time
}

// NewTextRenderer creates a text renderer. itemsPerPage values below 1
// disable pagination.
func NewTextRenderer(itemsPerPage int) *TextRenderer {
	return &TextRenderer{ItemsPerPage: itemsPerPage, now: time.Now}
}

func (r *TextRenderer) Render(w io.Writer, cat *catalog.Catalog) error {
	if err := r.writeHeader(w, cat); err != nil {
		return err
	}
	if err := r.writeStatistics(w, cat); err != nil {
		return err
	}

	page := 1
	for i, e := range cat.Entities {
		if r.ItemsPerPage > 0 && i > 0 && i%r.ItemsPerPage == 0 {
			page++
			if err := r.pageBreak(w, page); err != nil {
				return err
			}
		}
		if err := r.writeEntity(w, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) writeHeader(w io.Writer, cat *catalog.Catalog) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendRow(table.Row{"Media", len(cat.Entities)})
	tw.AppendRow(table.Row{"Sorted by", sortName(cat.Sort)})
	tw.AppendRow(table.Row{"Generated", r.now().Format("2006-01-02")})

	_, err := fmt.Fprintf(w, "Media Catalog\n\n%s\n\n", tw.Render())
	return err
}

func (r *TextRenderer) writeStatistics(w io.Writer, cat *catalog.Catalog) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Category", "Count"})
	tw.AppendRow(table.Row{"Movies", cat.Movies()})
	tw.AppendRow(table.Row{"TV Shows", cat.Shows()})
	tw.AppendFooter(table.Row{"Total", len(cat.Entities)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	_, err := fmt.Fprintf(w, "%s\n", tw.Render())
	return err
}

func (r *TextRenderer) writeEntity(w io.Writer, e *catalog.Entity) error {
	var b strings.Builder

	b.WriteString("\n" + e.Title + "\n")

	info := []string{e.Category.String(), orUnknownYear(e.Year)}
	if e.Category == catalog.CategoryShow && len(e.Seasons) > 0 {
		info = append(info,
			fmt.Sprintf("%d seasons", len(e.Seasons)),
			fmt.Sprintf("%d episodes", e.TotalEpisodes()),
		)
	}
	b.WriteString(strings.Join(info, " • ") + "\n")

	if len(e.AudioTracks) > 0 {
		b.WriteString("Audio: " + strings.Join(e.AudioTracks, ", ") + "\n")
	}
	if len(e.SubtitleTracks) > 0 {
		b.WriteString("Subtitles: " + strings.Join(e.SubtitleTracks, ", ") + "\n")
	}
	if e.Description != "" {
		b.WriteString(e.Description + "\n")
	}
	if e.PosterPath == "" {
		b.WriteString("(no image)\n")
	}

	if len(e.Seasons) > 0 {
		tw := table.NewWriter()
		tw.SetStyle(table.StyleLight)
		tw.AppendHeader(table.Row{"Season", "Episodes", "Artwork"})
		for _, s := range e.Seasons {
			artwork := "-"
			if s.PosterPath != "" {
				artwork = "yes"
			}
			tw.AppendRow(table.Row{s.Number, s.EpisodeCount, artwork})
		}
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Align: text.AlignRight},
			{Number: 2, Align: text.AlignRight},
		})
		b.WriteString(tw.Render() + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *TextRenderer) pageBreak(w io.Writer, page int) error {
	_, err := fmt.Fprintf(w, "\n%s Page %d %s\n", strings.Repeat("─", 30), page, strings.Repeat("─", 30))
	return err
}

func sortName(m catalog.SortMethod) string {
	switch m {
	case catalog.SortByYear:
		return "Year (newest first)"
	case catalog.SortByCategory:
		return "Type (movies, then TV shows)"
	default:
		return "Title (alphabetical)"
	}
}

func orUnknownYear(year string) string {
	if year == "" {
		return "Year unknown"
	}
	return year
}
