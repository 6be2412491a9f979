package canvas

import "textcanvas/core"

// turnTable maps glyphs to their image after a quarter turn. Each cycle
// lists the images of one glyph in counterclockwise order; a glyph takes
// its mapping from the first cycle it appears in.
type turnTable struct {
	left, right map[rune]rune
}

func newTurnTable(cycles ...[]rune) turnTable {
	t := turnTable{left: make(map[rune]rune), right: make(map[rune]rune)}
	for _, cycle := range cycles {
		n := len(cycle)
		for i, r := range cycle {
			if _, ok := t.left[r]; ok {
				continue
			}
			t.left[r] = cycle[(i+1)%n]
			t.right[r] = cycle[(i+n-1)%n]
		}
	}
	return t
}

func (t turnTable) turn(r rune, left bool) rune {
	m := t.right
	if left {
		m = t.left
	}
	if to, ok := m[r]; ok {
		return to
	}
	return r
}

var quarterTable = newTurnTable(
	[]rune{'/', '\\'}, []rune{'|', '-'}, []rune{'|', '_'}, []rune{'|', '‾'},
	[]rune{'╱', '╲'}, []rune{'─', '│'}, []rune{'━', '┃'}, []rune{'═', '║'},
	[]rune{'<', 'v', '>', '^'}, []rune{',', '.', '\'', '`'},
	[]rune{'(', '‿', ')', '⁀'}, []rune{'╭', '╰', '╯', '╮'},
	[]rune{'▌', '▄', '▐', '▀'}, []rune{'▖', '▗', '▝', '▘'}, []rune{'▙', '▟', '▜', '▛'},
	[]rune{'┌', '└', '┘', '┐'}, []rune{'┏', '┗', '┛', '┓'},
	[]rune{'├', '┴', '┤', '┬'}, []rune{'┣', '┻', '┫', '┳'},
	[]rune{'╒', '╙', '╛', '╖'}, []rune{'╓', '╘', '╜', '╕'}, []rune{'╔', '╚', '╝', '╗'},
	[]rune{'╞', '╨', '╡', '╥'}, []rune{'╟', '╧', '╢', '╤'}, []rune{'╠', '╩', '╣', '╦'},
	[]rune{'╴', '╷', '╶', '╵'}, []rune{'╸', '╻', '╺', '╹'},
)

// pairTable does the same for two-cell groups, which is how RotateLeft and
// RotateRight keep the aspect ratio. A wide glyph is written with its
// continuation marker.
type pairTable struct {
	left, right map[[2]rune][2]rune
}

func newPairTable(cycles ...[]string) pairTable {
	t := pairTable{left: make(map[[2]rune][2]rune), right: make(map[[2]rune][2]rune)}
	for _, cycle := range cycles {
		n := len(cycle)
		pairs := make([][2]rune, n)
		for i, s := range cycle {
			r := []rune(s)
			pairs[i] = [2]rune{r[0], r[1]}
		}
		for i, p := range pairs {
			if _, ok := t.left[p]; ok {
				continue
			}
			t.left[p] = pairs[(i+1)%n]
			t.right[p] = pairs[(i+n-1)%n]
		}
	}
	return t
}

func (t pairTable) turn(p [2]rune, left bool) [2]rune {
	m := t.right
	if left {
		m = t.left
	}
	if to, ok := m[p]; ok {
		return to
	}
	return p
}

var pairQuarterTable = newPairTable(
	[]string{"--", "丨\x00"}, []string{"||", "⼆\x00"}, []string{"▄▀", "▀▄"},
	[]string{": ", "..", " :", "''"},
	[]string{"/ ", "-.", " /", "'-"},
	[]string{"\\ ", ".-", " \\", "-'"},
	[]string{"\\_", "_/", "‾\\", "/‾"},
	[]string{"_\\", "‾/", "\\‾", "/_"},
	[]string{"| ", "__", " |", "‾‾"},
	[]string{"_|", "‾|", "|‾", "|_"},
	[]string{"(_", "‿|", "‾)", "|⁀"},
	[]string{"(‾", "|‿", "_)", "⁀|"},
	[]string{"\\/", "＞\x00", "/\\", "＜\x00"},
	[]string{" v", "> ", "ʌ ", " <"},
	[]string{"▄ ", " ▄", " ▀", "▀ "},
	[]string{"█ ", "▄▄", " █", "▀▀"},
	[]string{"█▄", "▄█", "▀█", "█▀"},
)

// RotateLeft turns the current frame 90 degrees counterclockwise. Cells
// are turned two by two so the picture keeps its proportions: the new
// width is twice the old height and the new height is half the old
// width, rounded up. Wide glyphs at odd columns are lost.
func (c *Canvas) RotateLeft() error {
	return c.rotatePairs("rotate left", true)
}

// RotateRight turns the current frame 90 degrees clockwise. See
// RotateLeft for the size rules.
func (c *Canvas) RotateRight() error {
	return c.rotatePairs("rotate right", false)
}

func (c *Canvas) rotatePairs(op string, left bool) error {
	if err := c.check(op); err != nil {
		return err
	}
	w, h := c.width, c.height
	w2 := (w + 1) / 2
	newW, newH := h*2, w2
	cells, err := allocCells(newW, newH)
	if err != nil {
		return err
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w2; x++ {
			a := c.cells[y*w+2*x]
			b := Cell{Rune: Blank, Attr: a.Attr}
			if 2*x+1 < w {
				b = c.cells[y*w+2*x+1]
			}
			// A blank takes the colours of its neighbour so they do not
			// show up on the wrong side after the turn.
			if a.Rune == Blank {
				a.Attr = b.Attr
			} else if b.Rune == Blank {
				b.Attr = a.Attr
			}

			p := pairQuarterTable.turn([2]rune{a.Rune, b.Rune}, left)
			row, col := w2-1-x, 2*y
			if !left {
				row, col = x, 2*(h-1-y)
			}
			cells[row*newW+col] = Cell{Rune: p[0], Attr: a.Attr}
			cells[row*newW+col+1] = Cell{Rune: p[1], Attr: b.Attr}
		}
	}

	turn := func(p core.Point) core.Point {
		if left {
			return core.Point{X: p.Y * 2, Y: (w - 1 - p.X) / 2}
		}
		return core.Point{X: (h - 1 - p.Y) * 2, Y: p.X / 2}
	}
	c.replaceCells(op, cells, newW, newH)
	c.cursor, c.handle = turn(c.cursor), turn(c.handle)
	return nil
}

// StretchLeft turns the current frame 90 degrees counterclockwise cell by
// cell, swapping width and height. The picture looks stretched; wide
// glyphs are lost.
func (c *Canvas) StretchLeft() error {
	return c.stretch("stretch left", true)
}

// StretchRight turns the current frame 90 degrees clockwise cell by cell.
func (c *Canvas) StretchRight() error {
	return c.stretch("stretch right", false)
}

func (c *Canvas) stretch(op string, left bool) error {
	if err := c.check(op); err != nil {
		return err
	}
	w, h := c.width, c.height
	cells, err := allocCells(h, w)
	if err != nil {
		return err
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := c.cells[y*w+x]
			if cell.Rune == Continuation || RuneWidth(cell.Rune) == 2 {
				cell.Rune = Blank
			}
			cell.Rune = quarterTable.turn(cell.Rune, left)
			row, col := w-1-x, y
			if !left {
				row, col = x, h-1-y
			}
			cells[row*h+col] = cell
		}
	}

	turn := func(p core.Point) core.Point {
		if left {
			return core.Point{X: p.Y, Y: w - 1 - p.X}
		}
		return core.Point{X: h - 1 - p.Y, Y: p.X}
	}
	c.replaceCells(op, cells, h, w)
	c.cursor, c.handle = turn(c.cursor), turn(c.handle)
	return nil
}

// replaceCells installs a new grid for the current frame, blanking any
// wide glyph that lost a half, and marks everything dirty.
func (c *Canvas) replaceCells(op string, cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x := range row {
			switch {
			case row[x].Rune == Continuation && (x == 0 || RuneWidth(row[x-1].Rune) != 2 || row[x-1].Rune == Continuation):
				row[x].Rune = Blank
			case row[x].Rune != Continuation && RuneWidth(row[x].Rune) == 2 && (x+1 == width || row[x+1].Rune != Continuation):
				row[x].Rune = Blank
				c.diag(KindSplitGlyph, op, x, y, "wide glyph split by the turn")
			}
		}
	}

	c.cells = cells
	c.width, c.height = width, height
	c.dirty.reset()
	c.markDirty(c.Bounds())
}
