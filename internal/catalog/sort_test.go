package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortKey(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"The Matrix", "matrix"},
		{"A Beautiful Mind", "beautiful mind"},
		{"An American Werewolf in London", "american werewolf in london"},
		{"Das Boot", "boot"},
		{"Le Fabuleux Destin d'Amélie Poulain", "fabuleux destin d'amélie poulain"},
		{"El Laberinto del Fauno", "laberinto del fauno"},
		{"Inception", "inception"},
		{"  The   Matrix  ", "matrix"},
		// A title that is only an article keeps its full form.
		{"The", "the"},
		{"Das", "das"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, SortKey(tt.title))
		})
	}
}

func TestSortKeyStripsOnlyFirstArticle(t *testing.T) {
	assert.Equal(t, "the the", SortKey("The The The"))
}

func TestParseSortMethod(t *testing.T) {
	for _, valid := range []string{"title", "year", "type", "TITLE", "Year"} {
		_, err := ParseSortMethod(valid)
		assert.NoError(t, err, valid)
	}
	_, err := ParseSortMethod("size")
	assert.Error(t, err)
}

func titles(entities []*Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.Title
	}
	return out
}

func TestSortByTitle(t *testing.T) {
	entities := []*Entity{
		{Title: "The Matrix"},
		{Title: "A Beautiful Mind"},
		{Title: "Das Boot"},
		{Title: "Inception"},
	}

	Sort(entities, SortByTitle)

	assert.Equal(t, []string{"A Beautiful Mind", "Das Boot", "Inception", "The Matrix"}, titles(entities))
}

func TestSortByYear(t *testing.T) {
	entities := []*Entity{
		{Title: "Old", Year: "1999"},
		{Title: "Undated"},
		{Title: "New", Year: "2001"},
	}

	Sort(entities, SortByYear)

	// Newest first; the entity without a year sorts last.
	assert.Equal(t, []string{"New", "Old", "Undated"}, titles(entities))
}

func TestSortByYearTieBreak(t *testing.T) {
	entities := []*Entity{
		{Title: "The Zebra", Year: "2001"},
		{Title: "An Apple", Year: "2001"},
	}

	Sort(entities, SortByYear)

	assert.Equal(t, []string{"An Apple", "The Zebra"}, titles(entities))
}

func TestSortByCategory(t *testing.T) {
	entities := []*Entity{
		{Title: "Breaking Bad", Category: CategoryShow},
		{Title: "The Matrix", Category: CategoryMovie},
		{Title: "A Beautiful Mind", Category: CategoryMovie},
	}

	Sort(entities, SortByCategory)

	require.Equal(t, []string{"A Beautiful Mind", "The Matrix", "Breaking Bad"}, titles(entities))
	assert.Equal(t, CategoryMovie, entities[0].Category)
	assert.Equal(t, CategoryShow, entities[2].Category)
}

func TestSortStable(t *testing.T) {
	first := &Entity{Title: "Twin", Year: "2010"}
	second := &Entity{Title: "Twin", Year: "2010"}
	entities := []*Entity{first, second}

	Sort(entities, SortByTitle)

	assert.Same(t, first, entities[0])
	assert.Same(t, second, entities[1])
}
