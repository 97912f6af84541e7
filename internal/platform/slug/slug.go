package slug

import (
	"strings"
	"unicode"
)

// MaxLen bounds a slug so stamped campaign ids stay short.
const MaxLen = 48

// Make lowercases input and joins its ASCII letter and digit runs with
// dashes. Input without any of them yields fallback.
func Make(input, fallback string) string {
	words := strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})
	s := strings.Join(words, "-")
	if len(s) > MaxLen {
		s = strings.TrimRight(s[:MaxLen], "-")
	}
	if s == "" {
		return fallback
	}
	return s
}
