package canvas

import "textcanvas/core"

// Blit copies src onto c so that the source handle lands on (x, y).
//
// Source cells holding TransparentRune are skipped, and when mask is not
// nil so are cells whose mask glyph is a blank. mask must have the size of
// src. A partially visible source is clipped; a source that misses the
// canvas entirely fails with ErrOutOfBounds and changes nothing. Wide
// glyphs split by the clip edges or by skipped cells are blanked.
func (c *Canvas) Blit(x, y int, src, mask *Canvas) error {
	if err := c.check("blit"); err != nil {
		return err
	}
	if src == nil || src.released {
		return ErrInvalidHandle
	}
	if mask != nil {
		if mask.released {
			return ErrInvalidHandle
		}
		if mask.width != src.width || mask.height != src.height {
			return ErrInvalidSize
		}
	}

	origin := core.Point{X: x, Y: y}.Sub(src.handle)
	area := core.RectXYWH(origin.X, origin.Y, src.width, src.height).Intersect(c.Bounds())
	if area.Empty() {
		return ErrOutOfBounds
	}

	srcCells := src.cells
	if src == c {
		srcCells = make([]Cell, len(c.cells))
		copy(srcCells, c.cells)
	}

	changed := false
	for dy := area.Min.Y; dy < area.Max.Y; dy++ {
		sy := dy - origin.Y
		srow := srcCells[sy*src.width : (sy+1)*src.width]
		drow := c.cells[dy*c.width : (dy+1)*c.width]

		for dx := area.Min.X; dx < area.Max.X; dx++ {
			sx := dx - origin.X
			cell := srow[sx]
			if cell.Rune == TransparentRune {
				continue
			}
			if mask != nil && mask.cells[sy*mask.width+sx].Rune == Blank {
				continue
			}

			switch {
			case dx == area.Min.X && cell.Rune == Continuation:
				// Right half of a glyph whose head is clipped.
				cell.Rune = Blank
			case dx == area.Max.X-1 && sx+1 < src.width && srow[sx+1].Rune == Continuation:
				// Head whose right half is clipped.
				cell.Rune = Blank
			}

			if drow[dx] != cell {
				drow[dx] = cell
				changed = true
			}
		}

		if c.repairRow("blit", dy, area.Min.X-1, area.Max.X+1) {
			changed = true
		}
	}

	if changed {
		c.markDirty(core.Rect{
			Min: core.Point{X: area.Min.X - 1, Y: area.Min.Y},
			Max: core.Point{X: area.Max.X + 1, Y: area.Max.Y},
		})
	}
	return nil
}

// repairRow blanks orphaned halves of wide glyphs in columns [from, to) of
// row y. It reports whether anything was changed.
func (c *Canvas) repairRow(op string, y, from, to int) bool {
	from, to = max(from, 0), min(to, c.width)
	row := c.cells[y*c.width : (y+1)*c.width]
	repaired := false

	for i := from; i < to; i++ {
		r := row[i].Rune
		orphan := false
		if r == Continuation {
			orphan = i == 0 || row[i-1].Rune == Continuation || RuneWidth(row[i-1].Rune) != 2
		} else if RuneWidth(r) == 2 {
			orphan = i+1 >= c.width || row[i+1].Rune != Continuation
		}
		if orphan {
			row[i].Rune = Blank
			repaired = true
			c.diag(KindSplitGlyph, op, i, y, "orphaned half of wide glyph blanked")
		}
	}
	return repaired
}
