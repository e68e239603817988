package composite

import (
	"strings"
	"unicode"
)

// NormalizeKey folds an attribute name for key lookup:
// "ZipCode", "zip_code", "zip-code" and "zipcode" all normalize to "zipcode".
func NormalizeKey(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
