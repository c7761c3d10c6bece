package language

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"eng", "English"},
		{"en", "English"},
		{"ger", "German"},
		{"deu", "German"},
		{"de", "German"},
		{"fra", "French"},
		{"fre", "French"},
		{"fr", "French"},
		{"spa", "Spanish"},
		{"ita", "Italian"},
		{"jpn", "Japanese"},
		{"rus", "Russian"},
		{"chi", "Chinese"},
		{"zho", "Chinese"},
		{"por", "Portuguese"},
		{"pol", "Polish"},
		{"tur", "Turkish"},
		{"ara", "Arabic"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.code))
		})
	}
}

func TestNormalizeCaseInsensitive(t *testing.T) {
	// Every table entry must resolve identically regardless of input case.
	for _, e := range languages {
		for _, code := range []string{e.code2, e.code3, e.alt3} {
			if code == "" {
				continue
			}
			mixed := strings.ToUpper(code[:1]) + code[1:]
			assert.Equal(t, Normalize(code), Normalize(strings.ToUpper(code)), "code %q", code)
			assert.Equal(t, Normalize(code), Normalize(mixed), "code %q", code)
		}
	}
}

func TestNormalizeUnknown(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"klingon", "Klingon"},
		{"NOR", "Nor"},
		{"x", "X"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.code))
		})
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("eng"))
	assert.True(t, Known("ENG"))
	assert.False(t, Known("klingon"))
	assert.False(t, Known(""))
}
