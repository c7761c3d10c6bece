// Package fixture writes a sample media library for demos and testing.
//
// The generated tree mirrors a real Jellyfin layout: movie directories with
// movie.nfo and poster.jpg, show directories with tvshow.nfo, season
// subdirectories full of episode descriptors, and season artwork in both
// the show-directory and season-directory conventions.
package fixture

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

type movie struct {
	dir   string
	title string
	year  string
	plot  string
}

type show struct {
	dir      string
	title    string
	year     string
	plot     string
	episodes []int // episodes per season, index 0 = season 1
}

var movies = []movie{
	{"Inception (2010)", "Inception", "2010",
		"A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O."},
	{"The Matrix (1999)", "The Matrix", "1999",
		"A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers."},
	{"Interstellar (2014)", "Interstellar", "2014",
		"A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival."},
	{"Das Boot (1981)", "Das Boot", "1981",
		"The claustrophobic world of a WWII German U-boat; boredom, filth and sheer terror."},
	{"Le Fabuleux Destin d'Amélie Poulain (2001)", "Le Fabuleux Destin d'Amélie Poulain", "2001",
		"Amélie is an innocent and naive girl in Paris with her own sense of justice. She decides to help those around her and discovers love."},
	{"El Laberinto del Fauno (2006)", "El Laberinto del Fauno", "2006",
		"In the Falangist Spain of 1944, the bookish young stepdaughter of a sadistic army officer escapes into an eerie but captivating fantasy world."},
	{"A Beautiful Mind (2001)", "A Beautiful Mind", "2001",
		"After John Nash, a brilliant but asocial mathematician, accepts secret work in cryptography, his life takes a turn for the nightmarish."},
}

var shows = []show{
	{"Breaking Bad", "Breaking Bad", "2008",
		"A high school chemistry teacher diagnosed with inoperable lung cancer turns to manufacturing and selling methamphetamine in order to secure his family's future.",
		[]int{13, 13, 13, 13, 16}},
	{"Stranger Things", "Stranger Things", "2016",
		"When a young boy disappears, his mother, a police chief and his friends must confront terrifying supernatural forces in order to get him back.",
		[]int{8, 8, 9, 9}},
}

// Generate writes the sample library under dir, creating it if needed.
func Generate(dir string) error {
	moviesDir := filepath.Join(dir, "Movies")
	for _, m := range movies {
		if err := writeMovie(filepath.Join(moviesDir, m.dir), m); err != nil {
			return err
		}
	}

	showsDir := filepath.Join(dir, "TV Shows")
	for i, s := range shows {
		// Alternate the season artwork convention so both search paths
		// get exercised.
		showDirArtwork := i%2 == 0
		if err := writeShow(filepath.Join(showsDir, s.dir), s, showDirArtwork); err != nil {
			return err
		}
	}
	return nil
}

func writeMovie(dir string, m movie) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create movie dir: %w", err)
	}
	nfo := fmt.Sprintf(movieTemplate, xmlEscape(m.title), m.year, xmlEscape(m.plot), xmlEscape(shorten(m.plot)))
	if err := os.WriteFile(filepath.Join(dir, "movie.nfo"), []byte(nfo), 0644); err != nil {
		return fmt.Errorf("write movie descriptor: %w", err)
	}
	return writePoster(filepath.Join(dir, "poster.jpg"))
}

func writeShow(dir string, s show, showDirArtwork bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create show dir: %w", err)
	}
	nfo := fmt.Sprintf(showTemplate, xmlEscape(s.title), s.year, xmlEscape(s.plot))
	if err := os.WriteFile(filepath.Join(dir, "tvshow.nfo"), []byte(nfo), 0644); err != nil {
		return fmt.Errorf("write show descriptor: %w", err)
	}
	if err := writePoster(filepath.Join(dir, "poster.jpg")); err != nil {
		return err
	}

	for i, count := range s.episodes {
		season := i + 1
		seasonDir := filepath.Join(dir, fmt.Sprintf("Season %02d", season))
		if err := os.MkdirAll(seasonDir, 0755); err != nil {
			return fmt.Errorf("create season dir: %w", err)
		}

		posterPath := filepath.Join(seasonDir, "poster.jpg")
		if showDirArtwork {
			posterPath = filepath.Join(dir, fmt.Sprintf("season%02d-poster.jpg", season))
		}
		if err := writePoster(posterPath); err != nil {
			return err
		}

		for ep := 1; ep <= count; ep++ {
			nfo := fmt.Sprintf(episodeTemplate, ep, season, ep)
			name := fmt.Sprintf("S%02dE%02d.nfo", season, ep)
			if err := os.WriteFile(filepath.Join(seasonDir, name), []byte(nfo), 0644); err != nil {
				return fmt.Errorf("write episode descriptor: %w", err)
			}
		}
	}
	return nil
}

// writePoster encodes a solid-color placeholder image at path, picking the
// codec from the extension.
func writePoster(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, 300, 450))
	bg := color.RGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff}
	for y := 0; y < 450; y++ {
		for x := 0; x < 300; x++ {
			img.Set(x, y, bg)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create poster: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".png") {
		err = png.Encode(f, img)
	} else {
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return fmt.Errorf("encode poster: %w", err)
	}
	return nil
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}

func shorten(plot string) string {
	runes := []rune(plot)
	if len(runes) <= 100 {
		return plot
	}
	return string(runes[:100]) + "..."
}

const movieTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<movie>
    <title>%s</title>
    <year>%s</year>
    <plot>%s</plot>
    <outline>%s</outline>
    <fileinfo>
        <streamdetails>
            <audio>
                <codec>DTS</codec>
                <language>eng</language>
                <channels>6</channels>
            </audio>
            <audio>
                <codec>AC3</codec>
                <language>ger</language>
                <channels>6</channels>
            </audio>
            <subtitle>
                <language>eng</language>
            </subtitle>
            <subtitle>
                <language>ger</language>
            </subtitle>
            <subtitle>
                <language>fra</language>
            </subtitle>
        </streamdetails>
    </fileinfo>
</movie>`

const showTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<tvshow>
    <title>%s</title>
    <year>%s</year>
    <plot>%s</plot>
</tvshow>`

const episodeTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<episodedetails>
    <title>Episode %d</title>
    <season>%d</season>
    <episode>%d</episode>
    <fileinfo>
        <streamdetails>
            <audio>
                <codec>AAC</codec>
                <language>eng</language>
                <channels>2</channels>
            </audio>
            <audio>
                <codec>AAC</codec>
                <language>ger</language>
                <channels>2</channels>
            </audio>
            <subtitle>
                <language>eng</language>
            </subtitle>
            <subtitle>
                <language>ger</language>
            </subtitle>
        </streamdetails>
    </fileinfo>
</episodedetails>`
