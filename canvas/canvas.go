// Package canvas provides a 2D grid of character cells with drawing and
// compositing primitives.
package canvas

import (
	"strings"

	"textcanvas/attr"
	"textcanvas/core"
)

// MaxCells bounds width*height. Larger canvases fail with ErrOutOfMemory
// before anything is allocated.
const MaxCells = 1 << 26

// Canvas is a grid of cells plus the implicit drawing state (cursor,
// current attribute, blit handle) used by the primitives. A canvas holds
// one or more frames, each with its own cells and drawing state; every
// operation except Resize and SetBoundaries works on the current frame.
//
// Thread Safety:
// Canvas is NOT thread-safe. It expects a single writer; readers running
// alongside a writer must synchronize externally.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//   - Writes outside the grid are silently dropped
//
// Wide Characters:
// A double-width glyph at column x stores Continuation at x+1 with the
// same attribute. Overwriting either half blanks the other one.
type Canvas struct {
	width  int
	height int
	cells  []Cell

	attr   attr.Attr
	cursor core.Point
	handle core.Point

	frames   []frame
	frame    int
	frameSeq int

	dirty    dirtyList
	sink     Sink
	released bool
}

func checkSize(width, height int) error {
	if width < 0 || height < 0 {
		return ErrInvalidSize
	}
	if width > 0 && height > MaxCells/width {
		return ErrOutOfMemory
	}
	return nil
}

func allocCells(width, height int) ([]Cell, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return make([]Cell, width*height), nil
}

// New creates a canvas with one frame, every cell set to a blank glyph and
// the default attribute. Zero dimensions are allowed.
func New(width, height int) (*Canvas, error) {
	cells, err := allocCells(width, height)
	if err != nil {
		return nil, err
	}
	for i := range cells {
		cells[i] = BlankCell
	}
	c := &Canvas{
		width:  width,
		height: height,
		cells:  cells,
	}
	c.frames = []frame{{name: c.nextFrameName()}}
	c.saveFrame()
	c.markDirty(c.Bounds())
	return c, nil
}

// Release frees the cell storage. Every later mutating call fails with
// ErrInvalidHandle and every getter returns its zero value.
func (c *Canvas) Release() error {
	if c.released {
		c.diag(KindReleased, "release", 0, 0, "canvas released twice")
		return ErrInvalidHandle
	}
	c.released = true
	c.cells = nil
	c.frames, c.frame = nil, 0
	c.width, c.height = 0, 0
	c.dirty.reset()
	return nil
}

// Released reports whether Release has been called.
func (c *Canvas) Released() bool {
	return c.released
}

func (c *Canvas) check(op string) error {
	if c.released {
		c.diag(KindReleased, op, 0, 0, "operation on released canvas")
		return ErrInvalidHandle
	}
	return nil
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the canvas area as a rectangle anchored at the origin.
func (c *Canvas) Bounds() core.Rect {
	return core.RectXYWH(0, 0, c.width, c.height)
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// put writes one glyph and keeps wide characters consistent. It returns
// the glyph width in columns whether or not the write landed.
func (c *Canvas) put(op string, x, y int, r rune, a attr.Attr) int {
	if r == Continuation {
		c.diag(KindMarkerWrite, op, x, y, "continuation marker is not a glyph")
		return 0
	}

	w := RuneWidth(r)
	if x >= c.width || y < 0 || y >= c.height {
		return w
	}

	wide := w == 2
	switch {
	case x == -1 && wide:
		// Only the right half is visible.
		x, r, wide = 0, Blank, false
	case x < 0:
		return w
	case wide && x+1 == c.width:
		c.diag(KindWideAtEdge, op, x, y, "wide glyph %q dropped at last column", r)
		return w
	}

	row := c.cells[y*c.width : (y+1)*c.width]
	xmin, xmax := x, x

	if x > 0 && row[x].Rune == Continuation {
		row[x-1].Rune = Blank
		xmin--
	}

	if wide {
		xmax++
		if x+2 < c.width && row[x+2].Rune == Continuation {
			row[x+2].Rune = Blank
			xmax++
		}
		row[x+1] = Cell{Rune: Continuation, Attr: a}
	} else if x+1 < c.width && row[x+1].Rune == Continuation {
		row[x+1].Rune = Blank
		xmax++
	}

	if row[x].Rune != r || row[x].Attr != a || xmin != x || xmax != x {
		c.markDirty(core.RectXYWH(xmin, y, xmax-xmin+1, 1))
	}
	row[x] = Cell{Rune: r, Attr: a}
	return w
}

// SetCell writes r with attribute a at (x, y) and returns the width of the
// glyph in columns. Out-of-bounds writes are silently ignored. A wide
// glyph in the last column is dropped and reported to the diagnostic sink.
func (c *Canvas) SetCell(x, y int, r rune, a attr.Attr) (int, error) {
	if err := c.check("set cell"); err != nil {
		return 0, err
	}
	return c.put("set cell", x, y, r, a), nil
}

// PutChar writes r at (x, y) using the current attribute.
func (c *Canvas) PutChar(x, y int, r rune) (int, error) {
	if err := c.check("put char"); err != nil {
		return 0, err
	}
	return c.put("put char", x, y, r, c.attr), nil
}

// Cell returns the cell at (x, y), or BlankCell outside the canvas.
func (c *Canvas) Cell(x, y int) (Cell, error) {
	if err := c.check("get cell"); err != nil {
		return BlankCell, err
	}
	if !c.inside(x, y) {
		return BlankCell, nil
	}
	return c.cells[y*c.width+x], nil
}

// PutAttr changes the attribute at (x, y) without touching the glyph.
// Both halves of a wide glyph are recoloured together.
func (c *Canvas) PutAttr(x, y int, a attr.Attr) error {
	if err := c.check("put attr"); err != nil {
		return err
	}
	if !c.inside(x, y) {
		return nil
	}

	row := c.cells[y*c.width : (y+1)*c.width]
	xmin, xmax := x, x
	if x > 0 && row[x].Rune == Continuation {
		xmin--
	} else if x+1 < c.width && row[x+1].Rune == Continuation {
		xmax++
	}

	changed := false
	for i := xmin; i <= xmax; i++ {
		if row[i].Attr != a {
			row[i].Attr = a
			changed = true
		}
	}
	if changed {
		c.markDirty(core.RectXYWH(xmin, y, xmax-xmin+1, 1))
	}
	return nil
}

// Clear resets every cell to a blank glyph with the current attribute.
func (c *Canvas) Clear() error {
	return c.Fill(Blank)
}

// Fill sets every cell to r with the current attribute.
func (c *Canvas) Fill(r rune) error {
	if err := c.check("fill"); err != nil {
		return err
	}
	if r == Continuation {
		c.diag(KindMarkerWrite, "fill", 0, 0, "continuation marker is not a glyph")
		return nil
	}
	if RuneWidth(r) == 2 {
		// Let put lay out the pairs and blank the odd column.
		for y := 0; y < c.height; y++ {
			for x := 0; x+1 < c.width; x += 2 {
				c.put("fill", x, y, r, c.attr)
			}
			if c.width%2 == 1 {
				c.put("fill", c.width-1, y, Blank, c.attr)
			}
		}
		return nil
	}
	cell := Cell{Rune: r, Attr: c.attr}
	for i := range c.cells {
		c.cells[i] = cell
	}
	c.markDirty(c.Bounds())
	return nil
}

// Cells returns a row-major copy of the grid.
func (c *Canvas) Cells() ([]Cell, error) {
	if err := c.check("cells"); err != nil {
		return nil, err
	}
	out := make([]Cell, len(c.cells))
	copy(out, c.cells)
	return out, nil
}

// Row returns a copy of row y. Rows outside the canvas fail with
// ErrOutOfBounds.
func (c *Canvas) Row(y int) ([]Cell, error) {
	if err := c.check("row"); err != nil {
		return nil, err
	}
	if y < 0 || y >= c.height {
		return nil, ErrOutOfBounds
	}
	out := make([]Cell, c.width)
	copy(out, c.cells[y*c.width:(y+1)*c.width])
	return out, nil
}

// Each calls fn for every cell in row-major order until fn returns false.
func (c *Canvas) Each(fn func(x, y int, cell Cell) bool) error {
	if err := c.check("each"); err != nil {
		return err
	}
	for i, cell := range c.cells {
		if !fn(i%c.width, i/c.width, cell) {
			return nil
		}
	}
	return nil
}

// String returns the glyphs as text, one line per row. Continuation cells
// are omitted so wide glyphs line up in a terminal; transparent cells
// print as blanks. Attributes are not rendered.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))

	for y := 0; y < c.height; y++ {
		for _, cell := range c.cells[y*c.width : (y+1)*c.width] {
			switch cell.Rune {
			case Continuation:
			case TransparentRune:
				sb.WriteRune(Blank)
			default:
				sb.WriteRune(cell.Rune)
			}
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
