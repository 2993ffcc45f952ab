package util

import (
	"encoding/base64"
	"strings"
)

// B64Encode returns the standard base64 encoding of src.
func B64Encode(src []byte) string {
	return base64.StdEncoding.EncodeToString(src)
}

// B64Decode decodes a standard base64 string.
func B64Decode(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// WrapString breaks s into newline-separated lines of at most width
// characters. Shard files are meant to be printed and typed back in, so
// the armored payload is wrapped to a readable column.
func WrapString(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/width + 1)
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteByte('\n')
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}

// UnwrapString removes all newline and carriage-return characters,
// undoing WrapString regardless of the original wrap column.
func UnwrapString(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", "")
}
