package canvas

import "textcanvas/core"

// plotSymmetric writes r at the four points (±x, ±y) around center.
func (c *Canvas) plotSymmetric(op string, center core.Point, x, y int, r rune) {
	for _, p := range [4]core.Point{
		{X: center.X + x, Y: center.Y + y},
		{X: center.X - x, Y: center.Y + y},
		{X: center.X + x, Y: center.Y - y},
		{X: center.X - x, Y: center.Y - y},
	} {
		if c.inside(p.X, p.Y) {
			c.put(op, p.X, p.Y, r, c.attr)
		}
	}
}

// DrawCircle outlines a circle of the given radius with glyph r.
func (c *Canvas) DrawCircle(center core.Point, radius int, r rune) error {
	if err := c.check("draw circle"); err != nil {
		return err
	}
	radius = abs(radius)

	test := 0
	for dx, dy := 0, radius; dx <= dy; dx++ {
		c.plotSymmetric("draw circle", center, dx, dy, r)
		c.plotSymmetric("draw circle", center, dy, dx, r)
		if test > 0 {
			test += dx - dy
			dy--
		} else {
			test += dx
		}
	}
	return nil
}

// ellipseStep is one point of a quadrant walk. flat is true while the
// curve is closer to horizontal than vertical.
type ellipseStep struct {
	x, y int
	flat bool
}

// walkEllipse runs the midpoint algorithm over one quadrant of an ellipse
// with semi-axes a and b, starting at (0, b) and ending on y == 0. The
// decision variables are kept in integers so results are exact.
func walkEllipse(a, b int, visit func(ellipseStep)) {
	a, b = abs(a), abs(b)
	if b == 0 {
		for x := 0; x <= a; x++ {
			visit(ellipseStep{x: x, flat: true})
		}
		return
	}
	aa, bb := a*a, b*b
	x, y := 0, b
	d1 := bb - aa*b + aa/4

	visit(ellipseStep{x: x, y: y, flat: true})
	for aa*y-aa/2 > bb*(x+1) {
		if d1 < 0 {
			d1 += bb * (2*x + 1)
		} else {
			d1 += bb*(2*x) + aa*(-2*y+2)
			y--
		}
		x++
		visit(ellipseStep{x: x, y: y, flat: true})
	}

	// bb*(x+0.5)^2 + aa*(y-1)^2 - aa*bb, truncated toward zero
	d2 := (bb*(2*x+1)*(2*x+1) + 4*aa*(y-1)*(y-1) - 4*aa*bb) / 4
	for y > 0 {
		if d2 < 0 {
			d2 += bb*(2*x+2) + aa*(-2*y+3)
			x++
		} else {
			d2 += aa * (-2*y + 3)
		}
		y--
		visit(ellipseStep{x: x, y: y})
	}
}

// DrawEllipse outlines an ellipse with horizontal semi-axis a and vertical
// semi-axis b using glyph r.
func (c *Canvas) DrawEllipse(center core.Point, a, b int, r rune) error {
	if err := c.check("draw ellipse"); err != nil {
		return err
	}
	walkEllipse(a, b, func(s ellipseStep) {
		c.plotSymmetric("draw ellipse", center, s.x, s.y, r)
	})
	return nil
}

// DrawThinEllipse outlines an ellipse with ASCII art: '-' along the flat
// parts and '|' along the steep ones.
func (c *Canvas) DrawThinEllipse(center core.Point, a, b int) error {
	if err := c.check("draw thin ellipse"); err != nil {
		return err
	}
	walkEllipse(a, b, func(s ellipseStep) {
		r := '|'
		if s.flat {
			r = '-'
		}
		c.plotSymmetric("draw thin ellipse", center, s.x, s.y, r)
	})
	return nil
}

// FillEllipse fills an ellipse with glyph r, one horizontal span per row.
func (c *Canvas) FillEllipse(center core.Point, a, b int, r rune) error {
	if err := c.check("fill ellipse"); err != nil {
		return err
	}

	span := func(x, y int) {
		c.clipLine(&segment{x1: center.X - x, y1: center.Y - y, x2: center.X + x, y2: center.Y - y, r: r, draw: drawSolid})
		c.clipLine(&segment{x1: center.X - x, y1: center.Y + y, x2: center.X + x, y2: center.Y + y, r: r, draw: drawSolid})
	}

	// A row is complete once the walk leaves it, so spans are drawn with
	// the widest x seen on each row.
	var last ellipseStep
	first := true
	walkEllipse(a, b, func(s ellipseStep) {
		if !first && s.y != last.y {
			span(last.x, last.y)
		}
		first = false
		last = s
	})
	span(last.x, last.y)
	return nil
}
