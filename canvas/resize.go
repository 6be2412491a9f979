package canvas

import (
	"errors"

	"textcanvas/core"
)

// Resize changes the dimensions of every frame. Cells inside both the old
// and the new bounds keep their content; new cells get a blank glyph and
// the frame's attribute. A wide glyph cut by the new right edge is
// blanked. On error the canvas is left exactly as it was.
func (c *Canvas) Resize(width, height int) error {
	if err := c.check("resize"); err != nil {
		return err
	}
	if err := checkSize(width, height); err != nil {
		return err
	}

	oldW, oldH := c.width, c.height
	err := c.eachFrame(func() error {
		c.resizeFrame(width, height)
		return nil
	})
	if err != nil {
		return err
	}

	c.dirty.clip(c.Bounds())
	if width > oldW {
		c.markDirty(core.RectXYWH(oldW, 0, width-oldW, min(oldH, height)))
	}
	if height > oldH {
		c.markDirty(core.RectXYWH(0, oldH, width, height-oldH))
	}
	return nil
}

// resizeFrame reallocates the loaded frame. The size has been checked.
func (c *Canvas) resizeFrame(width, height int) {
	cells := make([]Cell, width*height)
	oldW, oldH := c.width, c.height
	fill := Cell{Rune: Blank, Attr: c.attr}
	keepW, keepH := min(oldW, width), min(oldH, height)

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		n := 0
		if y < keepH {
			n = copy(row, c.cells[y*oldW:y*oldW+keepW])
		}
		for x := n; x < width; x++ {
			row[x] = fill
		}
		if y < keepH && width < oldW && width > 0 &&
			row[width-1].Rune != Continuation && c.cells[y*oldW+width].Rune == Continuation {
			row[width-1].Rune = Blank
			c.diag(KindSplitGlyph, "resize", width-1, y, "wide glyph cut by right edge")
		}
	}

	c.cells = cells
	c.width, c.height = width, height
}

// SetBoundaries crops or extends every frame to the rectangle
// (x, y, w, h) expressed in current coordinates. Cells that fall outside
// the old frame are blank with the frame's attribute.
func (c *Canvas) SetBoundaries(x, y, width, height int) error {
	if err := c.check("set boundaries"); err != nil {
		return err
	}
	if err := checkSize(width, height); err != nil {
		return err
	}

	err := c.eachFrame(func() error {
		return c.cropFrame(x, y, width, height)
	})
	if err != nil {
		return err
	}
	c.dirty.reset()
	c.markDirty(c.Bounds())
	return nil
}

func (c *Canvas) cropFrame(x, y, width, height int) error {
	next, err := New(width, height)
	if err != nil {
		return err
	}
	next.attr = c.attr
	if err := next.Clear(); err != nil {
		return err
	}
	next.sink = c.sink

	saved := c.handle
	c.handle = core.Point{}
	err = next.Blit(-x, -y, c, nil)
	c.handle = saved
	if err != nil && !errors.Is(err, ErrOutOfBounds) {
		return err
	}

	c.cells = next.cells
	c.width, c.height = width, height
	c.cursor = c.cursor.Sub(core.Point{X: x, Y: y})
	return nil
}
