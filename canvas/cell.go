package canvas

import (
	"github.com/mattn/go-runewidth"

	"textcanvas/attr"
)

const (
	// Blank is the glyph of an empty cell.
	Blank rune = ' '
	// Continuation fills the right half of a double-width glyph. It is
	// never written directly.
	Continuation rune = '\x00'
	// TransparentRune marks source cells that Blit leaves alone. It is a
	// Unicode noncharacter, so it never collides with real text.
	TransparentRune rune = '\uFFFF'
)

// Cell is one grid position.
type Cell struct {
	Rune rune
	Attr attr.Attr
}

// BlankCell is what Cell returns outside the canvas.
var BlankCell = Cell{Rune: Blank, Attr: attr.DefaultAttr}

// IsContinuation reports whether the cell is the right half of a wide glyph.
func (c Cell) IsContinuation() bool {
	return c.Rune == Continuation
}

// widthCond pins the East Asian ambiguous width to narrow so output does
// not depend on the locale of the process.
var widthCond = &runewidth.Condition{EastAsianWidth: false}

// RuneWidth returns how many columns r occupies: 2 for wide glyphs,
// 1 for everything else including control and zero-width runes.
func RuneWidth(r rune) int {
	if widthCond.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

// StringWidth returns the display width of s in terminal cells.
func StringWidth(s string) int {
	return widthCond.StringWidth(s)
}
