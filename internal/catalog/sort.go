package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMethod identifies one of the catalog orderings.
type SortMethod string

const (
	SortByTitle    SortMethod = "title"
	SortByYear     SortMethod = "year"
	SortByCategory SortMethod = "type"
)

// ParseSortMethod validates a sort method name from config or flags.
func ParseSortMethod(s string) (SortMethod, error) {
	switch SortMethod(strings.ToLower(s)) {
	case SortByTitle:
		return SortByTitle, nil
	case SortByYear:
		return SortByYear, nil
	case SortByCategory:
		return SortByCategory, nil
	default:
		return "", fmt.Errorf("unknown sort method %q (want title, year or type)", s)
	}
}

// articles are leading words ignored when building title sort keys.
var articles = map[string]bool{
	// English
	"the": true, "a": true, "an": true,
	// German
	"der": true, "die": true, "das": true, "ein": true, "eine": true,
	// French
	"le": true, "la": true, "les": true, "un": true, "une": true, "des": true,
	// Spanish
	"el": true, "los": true, "las": true, "una": true, "unos": true, "unas": true,
}

// SortKey lowers and trims a title and strips one leading article, so that
// "The Matrix" sorts under M and "Das Boot" under B. A title that is
// nothing but an article keeps its full form.
func SortKey(title string) string {
	words := strings.Fields(strings.ToLower(title))
	if len(words) == 0 {
		return ""
	}
	if articles[words[0]] && len(words) > 1 {
		words = words[1:]
	}
	return strings.Join(words, " ")
}

// Sort orders entities in place by the given method. All orderings are
// stable; title keys are compared with a collator so accented titles order
// naturally.
func Sort(entities []*Entity, method SortMethod) {
	// Collators are not safe for concurrent use; build one per call.
	coll := collate.New(language.Und)

	keys := make(map[*Entity]string, len(entities))
	for _, e := range entities {
		keys[e] = SortKey(e.Title)
	}
	byKey := func(i, j int) int {
		return coll.CompareString(keys[entities[i]], keys[entities[j]])
	}

	switch method {
	case SortByYear:
		// Newest first; entities without a year sort last.
		sort.SliceStable(entities, func(i, j int) bool {
			yi, yj := orZeroYear(entities[i].Year), orZeroYear(entities[j].Year)
			if yi != yj {
				return yi > yj
			}
			return byKey(i, j) < 0
		})
	case SortByCategory:
		sort.SliceStable(entities, func(i, j int) bool {
			if entities[i].Category != entities[j].Category {
				return entities[i].Category < entities[j].Category
			}
			return byKey(i, j) < 0
		})
	default:
		sort.SliceStable(entities, func(i, j int) bool {
			return byKey(i, j) < 0
		})
	}
}

func orZeroYear(year string) string {
	if year == "" {
		return "0000"
	}
	return year
}
