package canvas

import (
	"errors"
	"testing"

	"textcanvas/attr"
	"textcanvas/core"
)

// TestCanvas_Creation tests canvas creation and initialization.
func TestCanvas_Creation(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"Small", 10, 5},
		{"Square", 20, 20},
		{"Wide", 100, 10},
		{"Tall", 10, 100},
		{"Empty", 0, 0},
		{"Zero width", 0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, tt.width, tt.height)

			w, h := c.Size()
			if w != tt.width || h != tt.height {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, tt.width, tt.height)
			}

			cells := cellsOf(t, c)
			if len(cells) != tt.width*tt.height {
				t.Fatalf("len(Cells()) = %d, want %d", len(cells), tt.width*tt.height)
			}
			for i, cell := range cells {
				if cell != BlankCell {
					t.Errorf("cell %d = %+v, want blank", i, cell)
				}
			}
		})
	}
}

func TestCanvas_CreationErrors(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   error
	}{
		{"Negative width", -1, 5, ErrInvalidSize},
		{"Negative height", 5, -1, ErrInvalidSize},
		{"Too many cells", 1 << 14, 1 << 14, ErrOutOfMemory},
		{"Overflow", 1 << 30, 1 << 30, ErrOutOfMemory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.width, tt.height)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
			if c != nil {
				t.Errorf("New() returned a canvas on error")
			}
		})
	}
}

// TestCanvas_GetSet tests basic get/set operations and the out-of-bounds
// policy.
func TestCanvas_GetSet(t *testing.T) {
	c := mustNew(t, 10, 10)
	validator := NewTestValidator(t)
	a := attr.MustEncode(attr.Yellow, attr.Blue, attr.Bold)

	tests := []struct {
		name  string
		point core.Point
		char  rune
		valid bool
	}{
		{"Origin", core.Point{X: 0, Y: 0}, '╭', true},
		{"Center", core.Point{X: 5, Y: 5}, '┼', true},
		{"Bottom right", core.Point{X: 9, Y: 9}, '╯', true},
		{"Out of bounds X", core.Point{X: 10, Y: 5}, 'X', false},
		{"Out of bounds Y", core.Point{X: 5, Y: 10}, 'Y', false},
		{"Negative X", core.Point{X: -1, Y: 0}, 'N', false},
		{"Negative Y", core.Point{X: 5, Y: -1}, 'N', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := cellsOf(t, c)
			if _, err := c.SetCell(tt.point.X, tt.point.Y, tt.char, a); err != nil {
				t.Fatalf("SetCell() error = %v", err)
			}

			if !tt.valid {
				validator.AssertUnchanged(c, before)
				return
			}
			got, err := c.Cell(tt.point.X, tt.point.Y)
			if err != nil {
				t.Fatalf("Cell() error = %v", err)
			}
			if got != (Cell{Rune: tt.char, Attr: a}) {
				t.Errorf("Cell() = %+v, want %q with %v", got, tt.char, a)
			}
		})
	}

	got, err := c.Cell(100, 100)
	if err != nil || got != BlankCell {
		t.Errorf("Cell(100, 100) = %+v, %v; want blank cell", got, err)
	}
}

func TestCanvas_PutCharUsesCurrentAttr(t *testing.T) {
	c := mustNew(t, 4, 1)
	a := attr.MustEncode(attr.Red, attr.Default, attr.Underline)
	if err := c.SetAttr(a); err != nil {
		t.Fatal(err)
	}
	if _, err := c.PutChar(1, 0, 'x'); err != nil {
		t.Fatal(err)
	}
	got, _ := c.Cell(1, 0)
	if got.Attr != a {
		t.Errorf("attr = %v, want %v", got.Attr, a)
	}
}

func TestCanvas_WideCharacters(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		setup    func(c *Canvas)
		expected []rune
	}{
		{
			name:     "Wide glyph takes two cells",
			width:    4,
			setup:    func(c *Canvas) { c.PutChar(1, 0, '世') },
			expected: []rune{' ', '世', Continuation, ' '},
		},
		{
			name:     "Wide glyph in last column is dropped",
			width:    4,
			setup:    func(c *Canvas) { c.PutChar(3, 0, '世') },
			expected: []rune{' ', ' ', ' ', ' '},
		},
		{
			name:  "Overwriting right half blanks left half",
			width: 4,
			setup: func(c *Canvas) {
				c.PutChar(0, 0, '世')
				c.PutChar(1, 0, 'x')
			},
			expected: []rune{' ', 'x', ' ', ' '},
		},
		{
			name:  "Overwriting left half blanks right half",
			width: 4,
			setup: func(c *Canvas) {
				c.PutChar(1, 0, '世')
				c.PutChar(1, 0, 'x')
			},
			expected: []rune{' ', 'x', ' ', ' '},
		},
		{
			name:  "Wide over wide shifted by one",
			width: 5,
			setup: func(c *Canvas) {
				c.PutChar(2, 0, '世')
				c.PutChar(1, 0, '界')
			},
			expected: []rune{' ', '界', Continuation, ' ', ' '},
		},
		{
			name:  "Wide over wide shifted left",
			width: 5,
			setup: func(c *Canvas) {
				c.PutChar(0, 0, '世')
				c.PutChar(1, 0, '界')
			},
			expected: []rune{' ', '界', Continuation, ' ', ' '},
		},
		{
			name:  "Right half visible at column zero",
			width: 3,
			setup: func(c *Canvas) {
				c.PutChar(0, 0, 'q')
				c.PutChar(1, 0, 'r')
				c.PutChar(-1, 0, '世')
			},
			expected: []rune{' ', 'r', ' '},
		},
		{
			name:     "Continuation marker is rejected",
			width:    3,
			setup:    func(c *Canvas) { c.PutChar(1, 0, Continuation) },
			expected: []rune{' ', ' ', ' '},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, tt.width, 1)
			tt.setup(c)
			row, err := c.Row(0)
			if err != nil {
				t.Fatalf("Row(0) error = %v", err)
			}
			for i, want := range tt.expected {
				if row[i].Rune != want {
					t.Errorf("cell %d = %q, want %q", i, row[i].Rune, want)
				}
			}
		})
	}
}

func TestCanvas_WideContinuationAttr(t *testing.T) {
	c := mustNew(t, 4, 1)
	a := attr.MustEncode(attr.Green, attr.Black, 0)
	n, err := c.SetCell(0, 0, '世', a)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("SetCell() = %d, want 2", n)
	}
	cont, _ := c.Cell(1, 0)
	if !cont.IsContinuation() || cont.Attr != a {
		t.Errorf("continuation = %+v, want marker with %v", cont, a)
	}

	b := attr.MustEncode(attr.Red, attr.Black, 0)
	if err := c.PutAttr(1, 0, b); err != nil {
		t.Fatal(err)
	}
	head, _ := c.Cell(0, 0)
	cont, _ = c.Cell(1, 0)
	if head.Attr != b || cont.Attr != b {
		t.Errorf("PutAttr on right half recoloured %v/%v, want both %v", head.Attr, cont.Attr, b)
	}
}

func TestCanvas_WideDiagnostics(t *testing.T) {
	c := mustNew(t, 3, 1)
	rec := &diagRecorder{}
	c.SetSink(rec.sink)

	c.PutChar(2, 0, '世')
	c.PutChar(0, 0, Continuation)

	if rec.count(KindWideAtEdge) != 1 {
		t.Errorf("wide-at-edge diagnostics = %d, want 1", rec.count(KindWideAtEdge))
	}
	if rec.count(KindMarkerWrite) != 1 {
		t.Errorf("marker-write diagnostics = %d, want 1", rec.count(KindMarkerWrite))
	}
	if d := rec.got[0]; d.X != 2 || d.Y != 0 || d.Op != "put char" {
		t.Errorf("diagnostic = %+v", d)
	}
}

func TestCanvas_Release(t *testing.T) {
	c := mustNew(t, 5, 5)
	rec := &diagRecorder{}
	c.SetSink(rec.sink)

	if err := c.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}

	other := mustNew(t, 2, 2)
	ops := map[string]func() error{
		"SetCell":    func() error { _, err := c.SetCell(0, 0, 'x', 0); return err },
		"Cell":       func() error { _, err := c.Cell(0, 0); return err },
		"Resize":     func() error { return c.Resize(2, 2) },
		"SetAttr":    func() error { return c.SetAttr(0) },
		"SetCursor":  func() error { return c.SetCursor(1, 1) },
		"Clear":      func() error { return c.Clear() },
		"DrawLine":   func() error { return c.DrawLine(core.Point{}, core.Point{X: 3}, '#') },
		"FillBox":    func() error { return c.FillBox(0, 0, 2, 2, '#') },
		"Blit onto":  func() error { return c.Blit(0, 0, other, nil) },
		"Blit from":  func() error { return other.Blit(0, 0, c, nil) },
		"PutString":  func() error { _, err := c.PutString(0, 0, "hi"); return err },
		"FlushDirty": func() error { _, err := c.FlushDirty(); return err },
		"Flip":       func() error { return c.Flip() },
		"Cells":      func() error { _, err := c.Cells(); return err },
		"Row":        func() error { _, err := c.Row(0); return err },
		"DirtyRects": func() error { _, err := c.DirtyRects(); return err },
		"SetSink":    func() error { return c.SetSink(nil) },
		"RotateLeft": func() error { return c.RotateLeft() },
		"Stretch":    func() error { return c.StretchRight() },
		"SetFrame":   func() error { return c.SetFrame(0) },
		"NewFrame":   func() error { return c.CreateFrame(1) },
		"FreeFrame":  func() error { return c.FreeFrame(0) },
		"FrameName":  func() error { return c.SetFrameName("x") },
		"Release":    func() error { return c.Release() },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			if err := op(); !errors.Is(err, ErrInvalidHandle) {
				t.Errorf("%s after Release() error = %v, want ErrInvalidHandle", name, err)
			}
		})
	}

	if !c.Released() {
		t.Error("Released() = false")
	}
	if w, h := c.Size(); w != 0 || h != 0 {
		t.Errorf("Size() after Release() = (%d, %d)", w, h)
	}
	if rec.count(KindReleased) == 0 {
		t.Error("no released diagnostics recorded")
	}

	before := rec.count(KindReleased)
	if p := c.Cursor(); p != (core.Point{}) {
		t.Errorf("Cursor() after Release() = %v", p)
	}
	if a := c.Attr(); a != attr.DefaultAttr {
		t.Errorf("Attr() after Release() = %v", a)
	}
	if p := c.Handle(); p != (core.Point{}) {
		t.Errorf("Handle() after Release() = %v", p)
	}
	if got := rec.count(KindReleased) - before; got != 3 {
		t.Errorf("getters raised %d released diagnostics, want 3", got)
	}
}

func TestCanvas_String(t *testing.T) {
	c := mustNew(t, 5, 2)
	validator := NewTestValidator(t)

	c.PutString(0, 0, "a世b")
	c.SetCell(0, 1, TransparentRune, 0)
	c.PutChar(4, 1, 'z')

	validator.AssertCanvasEquals(c, `
a世b 
    z`)
}

func TestCanvas_Each(t *testing.T) {
	c := mustNew(t, 3, 2)
	fillPattern(t, c)

	var visited []core.Point
	err := c.Each(func(x, y int, cell Cell) bool {
		visited = append(visited, core.Point{X: x, Y: y})
		return len(visited) < 4
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, visited[i], want[i])
		}
	}
}

func TestCanvas_ClearAndFill(t *testing.T) {
	c := mustNew(t, 5, 2)
	validator := NewTestValidator(t)
	a := attr.MustEncode(attr.White, attr.Red, 0)
	c.SetAttr(a)

	c.Fill('世')
	validator.AssertCanvasEquals(c, `
世世 
世世 `)

	c.Clear()
	for i, cell := range cellsOf(t, c) {
		if cell != (Cell{Rune: Blank, Attr: a}) {
			t.Fatalf("cell %d = %+v after Clear()", i, cell)
		}
	}
}

func TestCodeOf(t *testing.T) {
	_, colorErr := attr.Encode(attr.Red, attr.Hex(0), 0)

	tests := []struct {
		err  error
		want Code
	}{
		{nil, CodeOK},
		{ErrInvalidSize, CodeInvalidSize},
		{colorErr, CodeInvalidColorMode},
		{ErrInvalidHandle, CodeInvalidHandle},
		{ErrOutOfBounds, CodeOutOfBounds},
		{ErrOutOfMemory, CodeOutOfMemory},
		{errors.New("boom"), CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	if v := Version(); v == "" || v[0] < '1' || v[0] > '9' {
		t.Errorf("Version() = %q, want a semantic version", v)
	}
}
