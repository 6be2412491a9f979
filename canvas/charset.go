package canvas

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// cp437Low holds the glyphs IBM PCs showed for bytes 0x01 to 0x1f.
var cp437Low = []rune("☺☻♥♦♣♠•◘○◙♂♀♪♫☼►◄↕‼¶§▬↨↑↓→←∟↔▲▼")

// CP437ToRune returns the glyph for code page 437 byte b. Byte 0 maps to
// Blank so it never reads as a continuation cell.
func CP437ToRune(b byte) rune {
	switch {
	case b == 0:
		return Blank
	case b < 0x20:
		return cp437Low[b-1]
	case b == 0x7f:
		return '⌂'
	}
	return charmap.CodePage437.DecodeByte(b)
}

// RuneToCP437 returns the code page 437 byte for r, or '?' when r has
// none.
func RuneToCP437(r rune) byte {
	switch {
	case r < 0x20:
		return '?'
	case r < 0x7f:
		return byte(r)
	case r == '⌂':
		return 0x7f
	}
	for i, g := range cp437Low {
		if g == r {
			return byte(i + 1)
		}
	}
	if b, ok := charmap.CodePage437.EncodeRune(r); ok && b >= 0x80 {
		return b
	}
	return '?'
}

// DecodeCP437 converts code page 437 bytes to a string.
func DecodeCP437(p []byte) string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, b := range p {
		sb.WriteRune(CP437ToRune(b))
	}
	return sb.String()
}

// EncodeCP437 converts s to code page 437, one byte per rune.
func EncodeCP437(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, RuneToCP437(r))
	}
	return out
}

// IsFullwidth reports whether r takes two cells.
func IsFullwidth(r rune) bool {
	return RuneWidth(r) == 2
}
