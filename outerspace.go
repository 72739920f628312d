// Package outerspace inserts prefixes and suffixes around the
// non-whitespace part of a string, keeping leading and trailing
// whitespace where it was.
//
// Whitespace is any rune for which unicode.IsSpace reports true.
package outerspace

import (
	"strings"

	"github.com/stefee/outerspace/internal/text"
)

// absent marks a boundary that was not looked up or does not exist.
const absent = -1

// WrapNonWhitespace inserts prefix before the first non-whitespace rune of s
// and suffix after the last one. If s is empty or all whitespace, the result
// is prefix + s + suffix.
func WrapNonWhitespace(s, prefix, suffix string) string {
	first, last := text.Bounds(s)
	return splice(s, prefix, suffix, first, last)
}

// PrefixNonWhitespace inserts prefix before the first non-whitespace rune
// of s. The rest of s is left as is.
func PrefixNonWhitespace(s, prefix string) string {
	return splice(s, prefix, "", text.FirstNonSpace(s), absent)
}

// SuffixNonWhitespace inserts suffix after the last non-whitespace rune
// of s. Everything before it is left as is.
func SuffixNonWhitespace(s, suffix string) string {
	return splice(s, "", suffix, absent, text.LastNonSpace(s))
}

// splice builds leading + prefix + core + suffix + trailing. first and last
// are byte offsets of the first and last core runes, or absent. With first
// absent the prefix goes to the very start, with last absent the suffix goes
// to the very end.
func splice(s, prefix, suffix string, first, last int) string {
	var b strings.Builder
	b.Grow(len(s) + len(prefix) + len(suffix))

	switch {
	case first != absent && last != absent:
		end := text.RuneEnd(s, last)
		b.WriteString(s[:first])
		b.WriteString(prefix)
		b.WriteString(s[first:end])
		b.WriteString(suffix)
		b.WriteString(s[end:])
	case first != absent:
		b.WriteString(s[:first])
		b.WriteString(prefix)
		b.WriteString(s[first:])
		b.WriteString(suffix)
	case last != absent:
		end := text.RuneEnd(s, last)
		b.WriteString(prefix)
		b.WriteString(s[:end])
		b.WriteString(suffix)
		b.WriteString(s[end:])
	default:
		b.WriteString(prefix)
		b.WriteString(s)
		b.WriteString(suffix)
	}

	return b.String()
}
