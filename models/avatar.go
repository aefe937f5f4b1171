package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Avatar builds the initials shown in place of a photo:
// first letter of each word, uppercased, at most two letters.
func Avatar(name string) string {
	initials := make([]rune, 0, 2)
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		initials = append(initials, unicode.ToUpper(r))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}
