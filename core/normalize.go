// pure name helpers shared by every validation rule -> no Gin/GORM imports here.
// Place for pure domain logic
package core

import "strings"

// spaceClass is the whitespace set browsers use for trim() and \s, as a regexp
// class body. isNameSpace below must list the same runes.
const spaceClass = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

// isNameSpace reports whitespace as a browser sees it. U+0085 is not included.
func isNameSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00A0', '\u1680', '\u2028', '\u2029', '\u202F', '\u205F', '\u3000', '\uFEFF':
		return true
	}
	return r >= '\u2000' && r <= '\u200A'
}

// NormalizeName returns the comparison form of a display name:
// lowercased, with every whitespace, apostrophe and hyphen removed.
// It is only used for pattern checks; the normalized value is never stored.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if isSeparator(r) { // drop "Anna O'Brien-Smith" separators -> "annaobriensmith"
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TrimName removes surrounding whitespace, including a stray BOM pasted from editors.
func TrimName(s string) string {
	return strings.TrimFunc(s, isNameSpace)
}

// isSeparator reports runes that may appear inside a name but carry no identity.
func isSeparator(r rune) bool {
	return isNameSpace(r) || r == '\'' || r == '-'
}
