package canvas

import "textcanvas/core"

// BoxStyle defines the glyphs of a box outline.
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune

	// Join merges line glyphs with those already on the canvas, so
	// touching boxes share junctions instead of overwriting each other.
	Join bool
}

// Predefined box styles
var (
	// DefaultBoxStyle uses rounded corners
	DefaultBoxStyle = BoxStyle{
		TopLeft:     '╭',
		TopRight:    '╮',
		BottomLeft:  '╰',
		BottomRight: '╯',
		Horizontal:  '─',
		Vertical:    '│',
	}

	// SimpleBoxStyle uses ASCII characters
	SimpleBoxStyle = BoxStyle{
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		Horizontal:  '-',
		Vertical:    '|',
	}

	// DoubleBoxStyle uses double lines
	DoubleBoxStyle = BoxStyle{
		TopLeft:     '╔',
		TopRight:    '╗',
		BottomLeft:  '╚',
		BottomRight: '╝',
		Horizontal:  '═',
		Vertical:    '║',
	}

	// ThinBoxStyle is ASCII art with soft corners.
	ThinBoxStyle = BoxStyle{
		TopLeft:     ',',
		TopRight:    '.',
		BottomLeft:  '`',
		BottomRight: '\'',
		Horizontal:  '-',
		Vertical:    '|',
	}

	// CP437BoxStyle uses the single-line box glyphs found in code page 437.
	CP437BoxStyle = BoxStyle{
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
		Horizontal:  '─',
		Vertical:    '│',
	}
)

// span returns the inclusive range of n cells starting at p. Negative n
// extends backwards from p; zero covers p alone.
func span(p, n int) (lo, hi int) {
	switch {
	case n > 0:
		return p, p + n - 1
	case n < 0:
		return p + n + 1, p
	}
	return p, p
}

// boxCorners normalizes a box to inclusive corners. A zero width or
// height collapses the box onto one column or row; both zero is empty.
func boxCorners(x, y, width, height int) (x1, y1, x2, y2 int, ok bool) {
	if width == 0 && height == 0 {
		return 0, 0, 0, 0, false
	}
	x1, x2 = span(x, width)
	y1, y2 = span(y, height)
	return x1, y1, x2, y2, true
}

// DrawBox outlines a box with glyph r and the current attribute.
//
// Degenerate sizes: width 0 draws a vertical line of height cells, height
// 0 a horizontal line of width cells, and both 0 draw nothing. Negative
// sizes extend the box left or up from (x, y).
func (c *Canvas) DrawBox(x, y, width, height int, r rune) error {
	if err := c.check("draw box"); err != nil {
		return err
	}
	x1, y1, x2, y2, ok := boxCorners(x, y, width, height)
	if !ok {
		return nil
	}

	corners := []core.Point{{X: x1, Y: y1}, {X: x1, Y: y2}, {X: x2, Y: y2}, {X: x2, Y: y1}, {X: x1, Y: y1}}
	for i := 0; i+1 < len(corners); i++ {
		c.clipLine(&segment{
			x1: corners[i].X, y1: corners[i].Y,
			x2: corners[i+1].X, y2: corners[i+1].Y,
			r: r, draw: drawSolid,
		})
	}
	return nil
}

// DrawThinBox outlines a box with ASCII art.
func (c *Canvas) DrawThinBox(x, y, width, height int) error {
	return c.DrawStyledBox(x, y, width, height, ThinBoxStyle)
}

// DrawCP437Box outlines a box with single-line box drawing glyphs.
func (c *Canvas) DrawCP437Box(x, y, width, height int) error {
	return c.DrawStyledBox(x, y, width, height, CP437BoxStyle)
}

// DrawStyledBox outlines a box with the glyphs of style. Degenerate sizes
// follow DrawBox, drawing the collapsed box with the Vertical or
// Horizontal glyph.
func (c *Canvas) DrawStyledBox(x, y, width, height int, style BoxStyle) error {
	if err := c.check("draw box"); err != nil {
		return err
	}
	x1, y1, x2, y2, ok := boxCorners(x, y, width, height)
	if !ok {
		return nil
	}
	if x2 < 0 || y2 < 0 || x1 >= c.width || y1 >= c.height {
		return nil
	}

	set := func(px, py int, r rune) {
		if style.Join {
			if px < 0 || py < 0 || px >= c.width || py >= c.height {
				return
			}
			r = joinGlyph(c.cells[py*c.width+px].Rune, r)
		}
		c.put("draw box", px, py, r, c.attr)
	}

	switch {
	case width == 0:
		for j := max(y1, 0); j <= min(y2, c.height-1); j++ {
			set(x1, j, style.Vertical)
		}
		return nil
	case height == 0:
		for i := max(x1, 0); i <= min(x2, c.width-1); i++ {
			set(i, y1, style.Horizontal)
		}
		return nil
	}

	// Edges
	for i := max(x1+1, 0); i < x2 && i < c.width; i++ {
		set(i, y1, style.Horizontal)
		set(i, y2, style.Horizontal)
	}
	for j := max(y1+1, 0); j < y2 && j < c.height; j++ {
		set(x1, j, style.Vertical)
		set(x2, j, style.Vertical)
	}

	// Corners
	set(x1, y1, style.TopLeft)
	set(x1, y2, style.BottomLeft)
	set(x2, y1, style.TopRight)
	set(x2, y2, style.BottomRight)
	return nil
}

// FillBox fills a box with glyph r and the current attribute. Sizes are
// interpreted as in DrawBox, so a zero width fills a single column.
func (c *Canvas) FillBox(x, y, width, height int, r rune) error {
	if err := c.check("fill box"); err != nil {
		return err
	}
	x1, y1, x2, y2, ok := boxCorners(x, y, width, height)
	if !ok {
		return nil
	}

	x1, y1 = max(x1, 0), max(y1, 0)
	x2, y2 = min(x2, c.width-1), min(y2, c.height-1)

	step := RuneWidth(r)
	for j := y1; j <= y2; j++ {
		for i := x1; i <= x2; i += step {
			c.put("fill box", i, j, r, c.attr)
		}
	}
	return nil
}
