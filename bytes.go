package outerspace

import (
	"github.com/stefee/outerspace/internal/text"
)

// WrapNonWhitespaceBytes is WrapNonWhitespace for byte slices.
// The result never shares memory with b.
func WrapNonWhitespaceBytes(b, prefix, suffix []byte) []byte {
	first, last := text.BoundsBytes(b)
	return spliceBytes(b, prefix, suffix, first, last)
}

// PrefixNonWhitespaceBytes is PrefixNonWhitespace for byte slices.
func PrefixNonWhitespaceBytes(b, prefix []byte) []byte {
	return spliceBytes(b, prefix, nil, text.FirstNonSpaceBytes(b), absent)
}

// SuffixNonWhitespaceBytes is SuffixNonWhitespace for byte slices.
func SuffixNonWhitespaceBytes(b, suffix []byte) []byte {
	return spliceBytes(b, nil, suffix, absent, text.LastNonSpaceBytes(b))
}

func spliceBytes(b, prefix, suffix []byte, first, last int) []byte {
	out := make([]byte, 0, len(b)+len(prefix)+len(suffix))

	switch {
	case first != absent && last != absent:
		end := text.RuneEndBytes(b, last)
		out = append(out, b[:first]...)
		out = append(out, prefix...)
		out = append(out, b[first:end]...)
		out = append(out, suffix...)
		out = append(out, b[end:]...)
	case first != absent:
		out = append(out, b[:first]...)
		out = append(out, prefix...)
		out = append(out, b[first:]...)
		out = append(out, suffix...)
	case last != absent:
		end := text.RuneEndBytes(b, last)
		out = append(out, prefix...)
		out = append(out, b[:end]...)
		out = append(out, suffix...)
		out = append(out, b[end:]...)
	default:
		out = append(out, prefix...)
		out = append(out, b...)
		out = append(out, suffix...)
	}

	return out
}
