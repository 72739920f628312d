package text

import (
	"unicode"
	"unicode/utf8"
)

// FirstNonSpace returns the byte offset of the first non-space rune in s,
// or -1 if s is empty or all space.
func FirstNonSpace(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isSpace(r) {
			return i
		}
		i += size
	}

	return -1
}

// LastNonSpace returns the byte offset where the last non-space rune in s
// starts, or -1 if s is empty or all space.
func LastNonSpace(s string) int {
	for j := len(s); j > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:j])
		j -= size
		if !isSpace(r) {
			return j
		}
	}

	return -1
}

// Bounds returns FirstNonSpace(s) and LastNonSpace(s).
// Both are -1 or both are valid offsets.
func Bounds(s string) (first, last int) {
	first = FirstNonSpace(s)
	if first < 0 {
		return -1, -1
	}

	return first, LastNonSpace(s)
}

// RuneEnd returns the offset just past the rune that starts at i.
func RuneEnd(s string, i int) int {
	if i < 0 || i >= len(s) {
		return len(s)
	}

	_, size := utf8.DecodeRuneInString(s[i:])
	return i + size
}

func FirstNonSpaceBytes(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if !isSpace(r) {
			return i
		}
		i += size
	}

	return -1
}

func LastNonSpaceBytes(b []byte) int {
	for j := len(b); j > 0; {
		r, size := utf8.DecodeLastRune(b[:j])
		j -= size
		if !isSpace(r) {
			return j
		}
	}

	return -1
}

func BoundsBytes(b []byte) (first, last int) {
	first = FirstNonSpaceBytes(b)
	if first < 0 {
		return -1, -1
	}

	return first, LastNonSpaceBytes(b)
}

func RuneEndBytes(b []byte, i int) int {
	if i < 0 || i >= len(b) {
		return len(b)
	}

	_, size := utf8.DecodeRune(b[i:])
	return i + size
}

// utf8.RuneError is not a space, so invalid bytes stay in the core.
func isSpace(r rune) bool {
	if r < utf8.RuneSelf {
		return r == ' ' || ('\t' <= r && r <= '\r')
	}

	return unicode.IsSpace(r)
}
