package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchExactTitle(t *testing.T) {
	entities := []*Entity{
		{Title: "The Matrix"},
		{Title: "Inception"},
		{Title: "Interstellar"},
	}

	matches := Search("matrix", entities)

	require.NotEmpty(t, matches)
	assert.Equal(t, "The Matrix", matches[0].Entity.Title)
	assert.Equal(t, ConfidenceHigh, matches[0].Confidence)
}

func TestSearchIgnoresArticlesAndCase(t *testing.T) {
	entities := []*Entity{{Title: "The Matrix"}}

	matches := Search("THE MATRIX", entities)

	require.Len(t, matches, 1)
	assert.Equal(t, ConfidenceHigh, matches[0].Confidence)
	assert.InDelta(t, 1.0, matches[0].Score, 0.001)
}

func TestSearchFuzzy(t *testing.T) {
	entities := []*Entity{
		{Title: "Interstellar"},
		{Title: "Das Boot"},
	}

	matches := Search("intersteller", entities)

	require.NotEmpty(t, matches)
	assert.Equal(t, "Interstellar", matches[0].Entity.Title)
	assert.GreaterOrEqual(t, matches[0].Score, 0.85)
}

func TestSearchNoMatch(t *testing.T) {
	entities := []*Entity{{Title: "Inception"}}

	assert.Empty(t, Search("zzzzzz", entities))
	assert.Empty(t, Search("", entities))
	assert.Empty(t, Search("the", []*Entity{{Title: "Inception"}}))
}

func TestConfidenceFor(t *testing.T) {
	tests := []struct {
		score float64
		want  MatchConfidence
	}{
		{0.99, ConfidenceHigh},
		{0.95, ConfidenceHigh},
		{0.90, ConfidenceMedium},
		{0.75, ConfidenceLow},
		{0.50, ConfidenceNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, confidenceFor(tt.score), "score %v", tt.score)
	}
}
