// Package core contains the geometry types shared by the textcanvas packages.
package core

import "fmt"

// Point represents a cell coordinate on a canvas.
// Origin (0,0) is top-left, X grows rightward and Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String returns the "(x,y)" form of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is a rectangular area of cells. Min is inclusive, Max is exclusive.
type Rect struct {
	Min, Max Point
}

// RectXYWH builds a Rect from an origin and a size.
func RectXYWH(x, y, width, height int) Rect {
	return Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + width, Y: y + height}}
}

// Width returns the width of the rectangle.
func (r Rect) Width() int {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() int {
	return r.Max.Y - r.Min.Y
}

// Empty reports whether the rectangle contains no cells.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersect returns the largest rectangle contained by both r and s.
// The result is the zero Rect when they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	if r.Empty() {
		return Rect{}
	}
	return r
}

// Union returns the smallest rectangle containing both r and s.
// Empty rectangles are ignored.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	if s.Min.X < r.Min.X {
		r.Min.X = s.Min.X
	}
	if s.Min.Y < r.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if s.Max.X > r.Max.X {
		r.Max.X = s.Max.X
	}
	if s.Max.Y > r.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// String returns a "WxH+X+Y" description of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width(), r.Height(), r.Min.X, r.Min.Y)
}
