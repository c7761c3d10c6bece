// Package catalog builds the in-memory media catalog from a library tree.
//
// The scanner walks a library root, classifies descriptor files, and
// assembles Entity records for movies and shows. Entities are built once
// per scan, never mutated afterwards, and handed to sorting and rendering
// as-is.
package catalog

// Category distinguishes movies from shows. Movies order before shows.
type Category int

const (
	CategoryMovie Category = iota
	CategoryShow
)

func (c Category) String() string {
	switch c {
	case CategoryMovie:
		return "Movie"
	case CategoryShow:
		return "TV Show"
	default:
		return "Unknown"
	}
}

// Season is a numbered grouping of episodes under a show.
type Season struct {
	Number       int
	EpisodeCount int
	PosterPath   string // empty when no artwork was found
}

// Entity is the in-memory record for one movie or show.
type Entity struct {
	Title          string
	Year           string // empty when the descriptor carries no year
	Description    string
	Category       Category
	PosterPath     string // empty when no artwork was found
	DescriptorPath string
	AudioTracks    []string // source order, duplicates allowed
	SubtitleTracks []string // deduplicated, first-seen order
	Seasons        []Season // shows only, ascending by number
}

// TotalEpisodes sums the episode counts across all seasons.
func (e *Entity) TotalEpisodes() int {
	total := 0
	for _, s := range e.Seasons {
		total += s.EpisodeCount
	}
	return total
}

// Catalog is the final scan product handed to the renderer: the ordered
// entity sequence plus the sort method that produced the order.
type Catalog struct {
	Entities []*Entity
	Sort     SortMethod
}

// Movies counts entities with CategoryMovie.
func (c *Catalog) Movies() int { return c.count(CategoryMovie) }

// Shows counts entities with CategoryShow.
func (c *Catalog) Shows() int { return c.count(CategoryShow) }

func (c *Catalog) count(cat Category) int {
	n := 0
	for _, e := range c.Entities {
		if e.Category == cat {
			n++
		}
	}
	return n
}
