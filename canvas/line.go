package canvas

import "textcanvas/core"

// segment is a line being clipped and rasterized.
type segment struct {
	x1, y1 int
	x2, y2 int
	r      rune
	draw   func(c *Canvas, s *segment)
}

// DrawLine draws a line between two points with glyph r and the current
// attribute, using Bresenham's algorithm. Both endpoints are drawn.
func (c *Canvas) DrawLine(p1, p2 core.Point, r rune) error {
	if err := c.check("draw line"); err != nil {
		return err
	}
	c.clipLine(&segment{x1: p1.X, y1: p1.Y, x2: p2.X, y2: p2.Y, r: r, draw: drawSolid})
	return nil
}

// DrawPolyline draws a line through consecutive points. The path is not
// closed; repeat the first point at the end to draw a polygon.
func (c *Canvas) DrawPolyline(points []core.Point, r rune) error {
	if err := c.check("draw polyline"); err != nil {
		return err
	}
	for i := 0; i+1 < len(points); i++ {
		c.clipLine(&segment{
			x1: points[i].X, y1: points[i].Y,
			x2: points[i+1].X, y2: points[i+1].Y,
			r: r, draw: drawSolid,
		})
	}
	return nil
}

// DrawThinLine draws a line between two points with ASCII art glyphs
// (- | , ' . `) chosen from the slope.
func (c *Canvas) DrawThinLine(p1, p2 core.Point) error {
	if err := c.check("draw thin line"); err != nil {
		return err
	}
	c.clipLine(&segment{x1: p1.X, y1: p1.Y, x2: p2.X, y2: p2.Y, draw: drawThin})
	return nil
}

// DrawThinPolyline is DrawPolyline with ASCII art glyphs.
func (c *Canvas) DrawThinPolyline(points []core.Point) error {
	if err := c.check("draw thin polyline"); err != nil {
		return err
	}
	for i := 0; i+1 < len(points); i++ {
		c.clipLine(&segment{
			x1: points[i].X, y1: points[i].Y,
			x2: points[i+1].X, y2: points[i+1].Y,
			draw: drawThin,
		})
	}
	return nil
}

// LineTo draws a line from the cursor to (x, y) and moves the cursor there.
func (c *Canvas) LineTo(x, y int, r rune) error {
	if err := c.DrawLine(c.cursor, core.Point{X: x, Y: y}, r); err != nil {
		return err
	}
	c.cursor = core.Point{X: x, Y: y}
	return nil
}

const (
	clipLeft = 1 << iota
	clipRight
	clipTop
	clipBottom
)

func (c *Canvas) outcode(x, y int) int {
	code := 0
	if x < 0 {
		code |= clipLeft
	} else if x >= c.width {
		code |= clipRight
	}
	if y < 0 {
		code |= clipTop
	} else if y >= c.height {
		code |= clipBottom
	}
	return code
}

// clipLine is Cohen-Sutherland clipping: the first endpoint is moved onto
// the canvas edge until both ends are inside or the line is rejected.
func (c *Canvas) clipLine(s *segment) {
	for {
		code1, code2 := c.outcode(s.x1, s.y1), c.outcode(s.x2, s.y2)
		if code1&code2 != 0 {
			return
		}
		if code1 == 0 {
			if code2 == 0 {
				s.draw(c, s)
				return
			}
			s.x1, s.x2 = s.x2, s.x1
			s.y1, s.y2 = s.y2, s.y1
			continue
		}

		switch {
		case code1&clipLeft != 0:
			s.y1 = s.y2 - s.x2*(s.y2-s.y1)/(s.x2-s.x1)
			s.x1 = 0
		case code1&clipRight != 0:
			xmax := c.width - 1
			s.y1 = s.y2 - (s.x2-xmax)*(s.y2-s.y1)/(s.x2-s.x1)
			s.x1 = xmax
		case code1&clipTop != 0:
			s.x1 = s.x2 - s.y2*(s.x2-s.x1)/(s.y2-s.y1)
			s.y1 = 0
		case code1&clipBottom != 0:
			ymax := c.height - 1
			s.x1 = s.x2 - (s.y2-ymax)*(s.x2-s.x1)/(s.y2-s.y1)
			s.y1 = ymax
		}
	}
}

// drawSolid is Bresenham's midpoint algorithm in integer arithmetic.
func drawSolid(c *Canvas, s *segment) {
	x, y := s.x1, s.y1
	dx, dy := abs(s.x2-s.x1), abs(s.y2-s.y1)

	xinc, yinc := 1, 1
	if s.x1 > s.x2 {
		xinc = -1
	}
	if s.y1 > s.y2 {
		yinc = -1
	}

	if dx >= dy {
		dpr := dy << 1
		dpru := dpr - dx<<1
		delta := dpr - dx
		for ; dx >= 0; dx-- {
			c.put("draw line", x, y, s.r, c.attr)
			x += xinc
			if delta > 0 {
				y += yinc
				delta += dpru
			} else {
				delta += dpr
			}
		}
		return
	}

	dpr := dx << 1
	dpru := dpr - dy<<1
	delta := dpr - dy
	for ; dy >= 0; dy-- {
		c.put("draw line", x, y, s.r, c.attr)
		y += yinc
		if delta > 0 {
			x += xinc
			delta += dpru
		} else {
			delta += dpr
		}
	}
}

// drawThin rasterizes like drawSolid but always left to right, picking
// glyphs that follow the slope.
func drawThin(c *Canvas, s *segment) {
	var charmapx, charmapy [2]rune
	x1, y1, x2, y2 := s.x1, s.y1, s.x2, s.y2

	if x2 >= x1 {
		charmapx = [2]rune{'`', '.'}
		if y1 > y2 {
			charmapx = [2]rune{',', '\''}
		}
	} else {
		charmapx = [2]rune{',', '\''}
		if y1 > y2 {
			charmapx = [2]rune{'`', '.'}
		}
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx, dy := abs(x2-x1), abs(y2-y1)

	yinc := 1
	charmapy = [2]rune{'`', '.'}
	if y1 > y2 {
		yinc = -1
		charmapy = [2]rune{',', '\''}
	}

	if dx >= dy {
		dpr := dy << 1
		dpru := dpr - dx<<1
		delta := dpr - dx
		prev := false
		for ; dx >= 0; dx-- {
			if delta > 0 {
				c.put("draw thin line", x1, y1, charmapy[1], c.attr)
				y1 += yinc
				delta += dpru
				prev = true
			} else {
				glyph := '-'
				if prev {
					glyph = charmapy[0]
				}
				c.put("draw thin line", x1, y1, glyph, c.attr)
				delta += dpr
				prev = false
			}
			x1++
		}
		return
	}

	dpr := dx << 1
	dpru := dpr - dy<<1
	delta := dpr - dy
	for ; dy >= 0; dy-- {
		if delta > 0 {
			c.put("draw thin line", x1, y1, charmapx[0], c.attr)
			c.put("draw thin line", x1+1, y1, charmapx[1], c.attr)
			x1++
			delta += dpru
		} else {
			c.put("draw thin line", x1, y1, '|', c.attr)
			delta += dpr
		}
		y1 += yinc
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
