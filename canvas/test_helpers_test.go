package canvas

import (
	"strings"
	"testing"

	"textcanvas/core"
)

// TestValidator provides assertion helpers for canvas tests.
type TestValidator struct {
	t *testing.T
}

// NewTestValidator creates a validator for canvas tests.
func NewTestValidator(t *testing.T) *TestValidator {
	t.Helper()
	return &TestValidator{t: t}
}

// mustNew creates a canvas or stops the test.
func mustNew(t *testing.T, width, height int) *Canvas {
	t.Helper()
	c, err := New(width, height)
	if err != nil {
		t.Fatalf("New(%d, %d) error = %v", width, height, err)
	}
	return c
}

// cellsOf returns a copy of the grid or stops the test.
func cellsOf(t *testing.T, c *Canvas) []Cell {
	t.Helper()
	cells, err := c.Cells()
	if err != nil {
		t.Fatalf("Cells() error = %v", err)
	}
	return cells
}

// dirtyOf returns the dirty list or stops the test.
func dirtyOf(t *testing.T, c *Canvas) []core.Rect {
	t.Helper()
	rects, err := c.DirtyRects()
	if err != nil {
		t.Fatalf("DirtyRects() error = %v", err)
	}
	return rects
}

// AssertCanvasEquals checks the canvas text against expected. A leading
// newline in expected is ignored so diagrams can start on their own line;
// every other blank is significant.
func (v *TestValidator) AssertCanvasEquals(c *Canvas, expected string) {
	v.t.Helper()
	expected = strings.TrimPrefix(expected, "\n")
	actual := c.String()

	if actual == expected {
		return
	}
	v.t.Errorf("Canvas output mismatch:\nExpected:\n%s\n\nActual:\n%s", expected, actual)

	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")
	for i := 0; i < len(expectedLines) || i < len(actualLines); i++ {
		switch {
		case i >= len(expectedLines):
			v.t.Errorf("Extra line %d: %q", i+1, actualLines[i])
		case i >= len(actualLines):
			v.t.Errorf("Missing line %d: %q", i+1, expectedLines[i])
		case expectedLines[i] != actualLines[i]:
			v.t.Errorf("Line %d differs:\n  Expected: %q\n  Actual:   %q", i+1, expectedLines[i], actualLines[i])
		}
	}
}

// AssertCharAt verifies the glyph at a specific position.
func (v *TestValidator) AssertCharAt(c *Canvas, p core.Point, expected rune) {
	v.t.Helper()
	cell, err := c.Cell(p.X, p.Y)
	if err != nil {
		v.t.Fatalf("Cell(%d,%d) error = %v", p.X, p.Y, err)
	}
	if cell.Rune != expected {
		v.t.Errorf("Character at (%d,%d): expected %q, got %q", p.X, p.Y, expected, cell.Rune)
	}
}

// AssertUnchanged verifies that every cell equals the snapshot.
func (v *TestValidator) AssertUnchanged(c *Canvas, before []Cell) {
	v.t.Helper()
	after := cellsOf(v.t, c)
	if len(after) != len(before) {
		v.t.Fatalf("cell count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			v.t.Errorf("cell %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

// fillPattern writes a distinct letter in every cell so moves are visible.
func fillPattern(t *testing.T, c *Canvas) {
	t.Helper()
	w, h := c.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if _, err := c.PutChar(x, y, rune('a'+(x+y*w)%26)); err != nil {
				t.Fatalf("PutChar error = %v", err)
			}
		}
	}
}

// diagRecorder collects diagnostics from a canvas.
type diagRecorder struct {
	got []Diagnostic
}

func (r *diagRecorder) sink(d Diagnostic) {
	r.got = append(r.got, d)
}

func (r *diagRecorder) count(kind Kind) int {
	n := 0
	for _, d := range r.got {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
