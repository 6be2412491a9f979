package canvas

// mirrorTable maps glyphs to their mirror image. It is built from pairs so
// that applying it twice is the identity.
type mirrorTable map[rune]rune

func newMirrorTable(pairs ...rune) mirrorTable {
	t := make(mirrorTable, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		t[pairs[i]] = pairs[i+1]
		t[pairs[i+1]] = pairs[i]
	}
	return t
}

func (t mirrorTable) apply(r rune) rune {
	if m, ok := t[r]; ok {
		return m
	}
	return r
}

// Left-right mirror images.
var flipTable = newMirrorTable(
	'(', ')', '/', '\\', '<', '>', '[', ']', 'b', 'd', 'p', 'q', '{', '}',
	';', '⁏', '`', '´', ',', 'ˎ', '1', '߁', 'C', 'Ͻ', 'E', 'Ǝ', 'L', '⅃',
	'N', 'И', 'R', 'Я', 'S', 'Ƨ', 'c', 'ɔ', 'e', 'ɘ',
	'▌', '▐', '▖', '▗', '▘', '▝', '▙', '▟', '▚', '▞', '▛', '▜',
	'►', '◄', '→', '←', '⌐', '¬',
	'┌', '┐', '└', '┘', '├', '┤', '┏', '┓', '┗', '┛', '┣', '┫',
	'╒', '╕', '╘', '╛', '╓', '╖', '╙', '╜', '╞', '╡', '╟', '╢',
	'╔', '╗', '╚', '╝', '╠', '╣', '╭', '╮', '╰', '╯', '╴', '╶', '╸', '╺',
)

// Top-bottom mirror images.
var flopTable = newMirrorTable(
	'/', '\\', 'M', 'W', ',', '`', 'b', 'p', 'd', 'q', 'f', 't', '.', '\'',
	'_', '‾', '!', '¡', 'L', 'Г', 'N', 'И', 'P', 'Ь', 'R', 'ʁ', 'S', 'Ƨ',
	'U', 'Ո', 'V', 'Λ', 'Y', '⅄', 'h', 'μ', 'i', 'ᴉ', 'j', 'ḷ', 'l', 'ȷ',
	'v', 'ʌ', 'w', 'ʍ', 'y', 'λ', '"', '„', 'm', 'ɯ', 'n', 'u',
	'▄', '▀', '▖', '▘', '▗', '▝', '▙', '▛', '▟', '▜', '▚', '▞',
	'┌', '└', '┐', '┘', '┬', '┴', '┏', '┗', '┓', '┛', '┳', '┻',
	'╒', '╘', '╕', '╛', '╓', '╙', '╖', '╜', '╤', '╧', '╥', '╨',
	'╔', '╚', '╗', '╝', '╦', '╩', '╭', '╰', '╮', '╯', '╵', '╷', '╹', '╻',
	'↑', '↓', '▲', '▼',
)

// Upside-down images.
var rotateTable = newMirrorTable(
	'(', ')', '<', '>', '[', ']', '{', '}', '.', '\'', '6', '9', 'M', 'W',
	'b', 'q', 'd', 'p', 'n', 'u', '_', '‾', ',', '´', '`', 'ˎ', '&', '⅋',
	'!', '¡', '?', '¿', 'C', 'Ͻ', 'E', 'Ǝ', 'F', 'Ⅎ', 'G', '⅁', 'L', '⅂',
	'U', 'Ո', 'V', 'Λ', 'Y', '⅄', 'a', 'ɐ', 'c', 'ɔ', 'e', 'ǝ', 'f', 'ɟ',
	'g', 'ᵷ', 'h', 'ɥ', 'i', 'ᴉ', 'j', 'ḷ', 'k', 'ʞ', 'l', 'ȷ', 'm', 'ɯ',
	'r', 'ɹ', 't', 'ʇ', 'v', 'ʌ', 'w', 'ʍ', 'y', 'ʎ',
	'▌', '▐', '▄', '▀', '▖', '▝', '▗', '▘', '▙', '▜', '▟', '▛',
	'►', '◄', '→', '←', '↑', '↓', '▲', '▼',
	'┌', '┘', '┐', '└', '├', '┤', '┬', '┴', '┏', '┛', '┓', '┗', '┣', '┫', '┳', '┻',
	'╔', '╝', '╗', '╚', '╠', '╣', '╦', '╩', '╭', '╯', '╮', '╰',
	'╴', '╶', '╵', '╷', '╸', '╺', '╹', '╻',
)

// Invert complements the colours of every cell, keeping glyphs and styles.
func (c *Canvas) Invert() error {
	if err := c.check("invert"); err != nil {
		return err
	}
	for i := range c.cells {
		c.cells[i].Attr = c.cells[i].Attr.Invert()
	}
	c.markDirty(c.Bounds())
	return nil
}

// Flip mirrors the canvas left to right, replacing glyphs with their
// mirror image where one exists. Flipping twice restores the canvas.
func (c *Canvas) Flip() error {
	if err := c.check("flip"); err != nil {
		return err
	}
	for y := 0; y < c.height; y++ {
		row := c.cells[y*c.width : (y+1)*c.width]
		reverse(row)
		for i := range row {
			row[i].Rune = flipTable.apply(row[i].Rune)
		}
		restoreWidePairs(row)
	}
	c.markDirty(c.Bounds())
	return nil
}

// Flop mirrors the canvas top to bottom. Flopping twice restores the
// canvas.
func (c *Canvas) Flop() error {
	if err := c.check("flop"); err != nil {
		return err
	}
	for top, bottom := 0, c.height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := c.cells[top*c.width : (top+1)*c.width]
		b := c.cells[bottom*c.width : (bottom+1)*c.width]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
	for i := range c.cells {
		c.cells[i].Rune = flopTable.apply(c.cells[i].Rune)
	}
	c.markDirty(c.Bounds())
	return nil
}

// Rotate180 turns the canvas upside down, replacing glyphs with their
// upside-down image where one exists. Rotating twice restores the canvas.
func (c *Canvas) Rotate180() error {
	if err := c.check("rotate"); err != nil {
		return err
	}
	reverse(c.cells)
	for i := range c.cells {
		c.cells[i].Rune = rotateTable.apply(c.cells[i].Rune)
	}
	for y := 0; y < c.height; y++ {
		restoreWidePairs(c.cells[y*c.width : (y+1)*c.width])
	}
	c.markDirty(c.Bounds())
	return nil
}

func reverse(cells []Cell) {
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
}

// restoreWidePairs puts each wide glyph back in front of its continuation
// after a row has been reversed.
func restoreWidePairs(row []Cell) {
	for i := 0; i+1 < len(row); i++ {
		if row[i].Rune == Continuation && row[i+1].Rune != Continuation && RuneWidth(row[i+1].Rune) == 2 {
			row[i], row[i+1] = row[i+1], row[i]
			i++
		}
	}
}
