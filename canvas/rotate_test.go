package canvas

import (
	"testing"

	"textcanvas/attr"
	"textcanvas/core"
)

func TestQuarterTable_BoxCorners(t *testing.T) {
	for _, r := range "┌┐└┘├┤┬┴╔╗╚╝╭╮╰╯" {
		got := r
		for i := 0; i < 4; i++ {
			got = quarterTable.turn(got, true)
		}
		if got != r {
			t.Errorf("%q after four left turns = %q", r, got)
		}
		if left := quarterTable.turn(r, true); quarterTable.turn(left, false) != r {
			t.Errorf("%q -> %q does not turn back", r, left)
		}
	}
	if got := quarterTable.turn('┌', true); got != '└' {
		t.Errorf("turn('┌') = %q, want '└'", got)
	}
}

func TestCanvas_QuarterTurns(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		transform func(c *Canvas) error
		expected  string
	}{
		{
			name:      "Stretch left",
			rows:      []string{"abc", "def"},
			transform: (*Canvas).StretchLeft,
			expected: `
cf
be
ad`,
		},
		{
			name:      "Stretch right",
			rows:      []string{"abc", "def"},
			transform: (*Canvas).StretchRight,
			expected: `
da
eb
fc`,
		},
		{
			name:      "Stretch left turns glyphs",
			rows:      []string{"<-"},
			transform: (*Canvas).StretchLeft,
			expected: `
|
v`,
		},
		{
			name:      "Stretch right turns glyphs",
			rows:      []string{"<-"},
			transform: (*Canvas).StretchRight,
			expected: `
^
|`,
		},
		{
			name:      "Stretch drops wide glyphs",
			rows:      []string{"世a"},
			transform: (*Canvas).StretchLeft,
			expected: `
a
 
 `,
		},
		{
			name:      "Rotate left keeps pairs together",
			rows:      []string{"abcd", "efgh"},
			transform: (*Canvas).RotateLeft,
			expected: `
cdgh
abef`,
		},
		{
			name:      "Rotate right keeps pairs together",
			rows:      []string{"abcd", "efgh"},
			transform: (*Canvas).RotateRight,
			expected: `
efab
ghcd`,
		},
		{
			name:      "Rotate left turns pairs",
			rows:      []string{"--||"},
			transform: (*Canvas).RotateLeft,
			expected: `
⼆
丨`,
		},
		{
			name:      "Rotate right turns pairs",
			rows:      []string{"--||"},
			transform: (*Canvas).RotateRight,
			expected: `
丨
⼆`,
		},
		{
			name:      "Odd width pads the last pair",
			rows:      []string{"abc"},
			transform: (*Canvas).RotateLeft,
			expected: `
c 
ab`,
		},
		{
			name:      "Wide glyph at an even column survives",
			rows:      []string{"世ab"},
			transform: (*Canvas).RotateLeft,
			expected: `
ab
世`,
		},
		{
			name:      "Wide glyph at an odd column is lost",
			rows:      []string{"a世"},
			transform: (*Canvas).RotateLeft,
			expected: `
  
a `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, StringWidth(tt.rows[0]), len(tt.rows))
			for y, row := range tt.rows {
				c.PutString(0, y, row)
			}
			if err := tt.transform(c); err != nil {
				t.Fatalf("transform error = %v", err)
			}
			NewTestValidator(t).AssertCanvasEquals(c, tt.expected)
			if got := dirtyOf(t, c); len(got) != 1 || got[0] != c.Bounds() {
				t.Errorf("DirtyRects() = %v, want whole canvas", got)
			}
		})
	}
}

func TestCanvas_QuarterTurnsRoundTrip(t *testing.T) {
	pairs := []struct {
		name        string
		there, back func(c *Canvas) error
		rows        []string
	}{
		{"rotate", (*Canvas).RotateLeft, (*Canvas).RotateRight, []string{"ab/\\(_", "--cd||"}},
		{"stretch", (*Canvas).StretchLeft, (*Canvas).StretchRight, []string{"a/<", "-b("}},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, len(tt.rows[0]), len(tt.rows))
			for y, row := range tt.rows {
				c.PutString(0, y, row)
			}
			c.SetCursor(2, 1)
			c.SetHandle(2, 0)
			want := c.String()

			if err := tt.there(c); err != nil {
				t.Fatal(err)
			}
			if err := tt.back(c); err != nil {
				t.Fatal(err)
			}
			NewTestValidator(t).AssertCanvasEquals(c, want)
			if got := c.Cursor(); got != (core.Point{X: 2, Y: 1}) {
				t.Errorf("Cursor() = %v, want (2,1)", got)
			}
			if got := c.Handle(); got != (core.Point{X: 2, Y: 0}) {
				t.Errorf("Handle() = %v, want (2,0)", got)
			}
		})
	}
}

func TestCanvas_RotateLeftColours(t *testing.T) {
	c := mustNew(t, 2, 1)
	red := attr.MustEncode(attr.White, attr.Red, 0)
	blue := attr.MustEncode(attr.White, attr.Blue, 0)
	c.SetCell(0, 0, 'x', red)
	c.SetCell(1, 0, ' ', blue)

	if err := c.RotateLeft(); err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 2; x++ {
		cell, _ := c.Cell(x, 0)
		if cell.Attr != red {
			t.Errorf("cell %d attr = %v, want the glyph's colours", x, cell.Attr)
		}
	}
}
