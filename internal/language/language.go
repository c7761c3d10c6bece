// Package language maps ISO 639 language codes to display names.
//
// Descriptor files carry stream languages as two- or three-letter codes
// (sometimes the bibliographic variant, e.g. "ger" next to "deu"). All
// conversions are consolidated here so the parser and the renderer agree
// on display names.
package language

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type entry struct {
	code2   string // ISO 639-1 (2-letter)
	code3   string // ISO 639-2 primary (3-letter)
	alt3    string // ISO 639-2 bibliographic variant (e.g. "fre" vs "fra")
	display string // Human-readable name
}

var languages = []entry{
	{"de", "deu", "ger", "German"},
	{"en", "eng", "", "English"},
	{"fr", "fra", "fre", "French"},
	{"es", "spa", "", "Spanish"},
	{"it", "ita", "", "Italian"},
	{"ja", "jpn", "", "Japanese"},
	{"ru", "rus", "", "Russian"},
	{"zh", "zho", "chi", "Chinese"},
	{"pt", "por", "", "Portuguese"},
	{"pl", "pol", "", "Polish"},
	{"tr", "tur", "", "Turkish"},
	{"ar", "ara", "", "Arabic"},
}

var byCode map[string]string

func init() {
	byCode = make(map[string]string, len(languages)*3)
	for _, e := range languages {
		byCode[e.code2] = e.display
		byCode[e.code3] = e.display
		if e.alt3 != "" {
			byCode[e.alt3] = e.display
		}
	}
}

// Normalize converts a language code to its display name.
// Unknown codes are returned with only the first letter upper-cased,
// so unmapped input still renders reasonably. Total function; never fails.
func Normalize(code string) string {
	if display, ok := byCode[strings.ToLower(code)]; ok {
		return display
	}
	return capitalize(code)
}

// Known reports whether the code is in the conversion table.
func Known(code string) bool {
	_, ok := byCode[strings.ToLower(code)]
	return ok
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
