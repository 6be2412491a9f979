package scene

import (
	"fmt"

	"textcanvas/canvas"
)

type sprite struct {
	src  *canvas.Canvas
	mask *canvas.Canvas
}

func (s *sprite) release() {
	s.src.Release()
	if s.mask != nil {
		s.mask.Release()
	}
}

// rowsSize returns the canvas size needed to hold rows.
func rowsSize(rows []string) (width, height int) {
	for _, row := range rows {
		width = max(width, canvas.StringWidth(row))
	}
	return width, len(rows)
}

// drawRows writes rows onto a fresh canvas of the given size.
func drawRows(rows []string, width, height int, setup func(c *canvas.Canvas) error) (*canvas.Canvas, error) {
	c, err := canvas.New(width, height)
	if err != nil {
		return nil, err
	}
	if setup != nil {
		if err := setup(c); err != nil {
			c.Release()
			return nil, err
		}
	}
	if err := c.Clear(); err != nil {
		c.Release()
		return nil, err
	}
	for y, row := range rows {
		if _, err := c.PutString(0, y, row); err != nil {
			c.Release()
			return nil, err
		}
	}
	return c, nil
}

func (sp *Sprite) build() (*sprite, error) {
	width, height := rowsSize(sp.Rows)

	src, err := drawRows(sp.Rows, width, height, func(c *canvas.Canvas) error {
		if err := setAttr(c, sp.Fg, sp.Bg, sp.Style); err != nil {
			return err
		}
		return c.SetHandle(sp.Handle[0], sp.Handle[1])
	})
	if err != nil {
		return nil, err
	}

	if sp.Transparent != "" {
		see := glyph(sp.Transparent)
		cells, err := src.Cells()
		if err != nil {
			return nil, err
		}
		for i, cell := range cells {
			if cell.Rune == see {
				src.SetCell(i%width, i/width, canvas.TransparentRune, cell.Attr)
			}
		}
	}

	built := &sprite{src: src}
	if len(sp.Mask) == 0 {
		return built, nil
	}

	mw, mh := rowsSize(sp.Mask)
	if mw > width || mh != height {
		src.Release()
		return nil, fmt.Errorf("mask is %dx%d, sprite is %dx%d: %w", mw, mh, width, height, canvas.ErrInvalidSize)
	}
	if built.mask, err = drawRows(sp.Mask, width, height, nil); err != nil {
		src.Release()
		return nil, err
	}
	return built, nil
}
