package catalog

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// MatchConfidence grades how well a query matched an entity title.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // Score < 0.70
	ConfidenceLow                           // Score >= 0.70
	ConfidenceMedium                        // Score >= 0.85
	ConfidenceHigh                          // Score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Match is one fuzzy search hit.
type Match struct {
	Entity     *Entity
	Score      float64
	Confidence MatchConfidence
}

// Search ranks entities against a free-form title query using Jaro-Winkler
// similarity, which favors prefix matches (good for media titles). Both
// sides are normalized through SortKey so articles and case do not skew
// scores. Hits below the low-confidence threshold are dropped.
func Search(query string, entities []*Entity) []Match {
	normalized := SortKey(query)
	if normalized == "" {
		return nil
	}

	var matches []Match
	for _, e := range entities {
		score := float64(edlib.JaroWinklerSimilarity(normalized, SortKey(e.Title)))
		conf := confidenceFor(score)
		if conf == ConfidenceNone {
			continue
		}
		matches = append(matches, Match{Entity: e, Score: score, Confidence: conf})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	return matches
}

func confidenceFor(score float64) MatchConfidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}
