package canvas

import "textcanvas/core"

// DrawTriangle outlines a triangle with glyph r.
func (c *Canvas) DrawTriangle(p1, p2, p3 core.Point, r rune) error {
	return c.DrawPolyline([]core.Point{p1, p2, p3, p1}, r)
}

// DrawThinTriangle outlines a triangle with ASCII art.
func (c *Canvas) DrawThinTriangle(p1, p2, p3 core.Point) error {
	return c.DrawThinPolyline([]core.Point{p1, p2, p3, p1})
}

// 16.16 fixed point
const (
	fixedOne  = 1 << 16
	fixedHalf = 0x800
)

// FillTriangle fills a triangle with glyph r. Edges are walked in 16.16
// fixed point so the result is the same on every platform.
func (c *Canvas) FillTriangle(p1, p2, p3 core.Point, r rune) error {
	if err := c.check("fill triangle"); err != nil {
		return err
	}

	// Sort so that p1.Y <= p2.Y <= p3.Y.
	if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}
	if p2.Y > p3.Y {
		p2, p3 = p3, p2
	}
	if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}

	slope := func(a, b core.Point) int {
		if a.Y == b.Y {
			return 0
		}
		return (b.X - a.X) * fixedOne / (b.Y - a.Y)
	}
	sl21, sl31, sl32 := slope(p1, p2), slope(p1, p3), slope(p2, p3)

	x1, x2, x3 := p1.X*fixedOne, p2.X*fixedOne, p3.X*fixedOne
	ymin := max(p1.Y, 0)
	ymax := min(p3.Y+1, c.height)

	var xa, xb int
	switch {
	case ymin < p2.Y:
		xa = x1 + sl21*(ymin-p1.Y)
		xb = x1 + sl31*(ymin-p1.Y)
	case ymin == p2.Y:
		xa = x2
		xb = x1 + sl31*(ymin-p1.Y)
		if p1.Y == p3.Y {
			xb = x3
		}
	default:
		xa = x3 + sl32*(ymin-p3.Y)
		xb = x3 + sl31*(ymin-p3.Y)
	}

	for y := ymin; y < ymax; y++ {
		lo, hi := xa, xb
		if lo > hi {
			lo, hi = hi, lo
		}
		xx1 := floorDiv(lo+fixedHalf, fixedOne)
		xx2 := floorDiv(hi+fixedHalf+1, fixedOne)

		for x := max(xx1, 0); x < min(xx2+1, c.width); x++ {
			c.put("fill triangle", x, y, r, c.attr)
		}

		if y < p2.Y {
			xa += sl21
		} else {
			xa += sl32
		}
		xb += sl31
	}
	return nil
}

// floorDiv divides rounding toward negative infinity, so that shapes
// crossing the left edge rasterize like shapes fully on the canvas.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
