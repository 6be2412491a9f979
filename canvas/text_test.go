package canvas

import (
	"errors"
	"testing"

	"textcanvas/core"
)

func TestWrapTextMode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		mode     WrapMode
		expected []string
	}{
		{
			name:  "WrapModeWord - normal",
			text:  "This is a test of word wrapping",
			width: 10,
			mode:  WrapModeWord,
			expected: []string{
				"This is a",
				"test of",
				"word",
				"wrapping",
			},
		},
		{
			name:  "WrapModeWord - long word",
			text:  "This supercalifragilisticexpialidocious word",
			width: 10,
			mode:  WrapModeWord,
			expected: []string{
				"This",
				"supercalifragilisticexpialidocious",
				"word",
			},
		},
		{
			name:  "WrapModeChar - long word",
			text:  "This superlongword breaks",
			width: 10,
			mode:  WrapModeChar,
			expected: []string{
				"This",
				"superlongw",
				"ord breaks",
			},
		},
		{
			name:  "WrapModeChar - long first word",
			text:  "abcdefgh ij",
			width: 3,
			mode:  WrapModeChar,
			expected: []string{
				"abc",
				"def",
				"gh",
				"ij",
			},
		},
		{
			name:  "WrapModeHyphenate - long word",
			text:  "This superlongword breaks",
			width: 10,
			mode:  WrapModeHyphenate,
			expected: []string{
				"This",
				"superlong-",
				"word",
				"breaks",
			},
		},
		{
			name:  "Unicode width aware",
			text:  "Hello 世界 test",
			width: 10,
			mode:  WrapModeWord,
			expected: []string{
				"Hello 世界",
				"test",
			},
		},
		{
			name:  "Unicode char break",
			text:  "你好世界测试文本",
			width: 8,
			mode:  WrapModeChar,
			expected: []string{
				"你好世界",
				"测试文本",
			},
		},
		{
			name:  "Unicode char break with space",
			text:  "你好 世界测试文本",
			width: 8,
			mode:  WrapModeChar,
			expected: []string{
				"你好",
				"世界测试",
				"文本",
			},
		},
		{
			name:     "Only whitespace",
			text:     "   \n\t ",
			width:    5,
			mode:     WrapModeWord,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WrapTextMode(tt.text, tt.width, tt.mode)

			if len(result) != len(tt.expected) {
				t.Errorf("Expected %d lines, got %d", len(tt.expected), len(result))
				t.Errorf("Result: %q", result)
				return
			}

			for i, line := range result {
				if line != tt.expected[i] {
					t.Errorf("Line %d: expected %q, got %q", i, tt.expected[i], line)
				}
			}
		})
	}
}

func TestWrapText_ZeroWidth(t *testing.T) {
	if got := WrapText("anything", 0); got != nil {
		t.Errorf("WrapText with zero width = %q, want nil", got)
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"Hello", 5},
		{"", 0},
		{"你好", 4},
		{"Hello 世界", 10},
		{"🔥Hot", 5},
		{"e\u0301", 1},        // e with combining accent
		{"test\u200Dtest", 8}, // with zero-width joiner
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			width := StringWidth(tt.text)
			if width != tt.expected {
				t.Errorf("StringWidth(%q) = %d, want %d", tt.text, width, tt.expected)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text     string
		maxWidth int
		expected string
	}{
		{"Hello, World!", 5, "Hello"},
		{"你好世界", 4, "你好"},
		{"你好世界", 5, "你好"},
		{"你好世界", 6, "你好世"},
		{"🔥Hot", 3, "🔥H"},
		{"🔥Hot", 2, "🔥"},
		{"🔥Hot", 1, ""},
		{"e\u0301x", 1, "e\u0301"},
		{"test", 10, "test"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			result := TruncateToWidth(tt.text, tt.maxWidth)
			if result != tt.expected {
				t.Errorf("TruncateToWidth(%q, %d) = %q, want %q",
					tt.text, tt.maxWidth, result, tt.expected)
			}

			width := StringWidth(result)
			if width > tt.maxWidth {
				t.Errorf("Result width %d exceeds maxWidth %d", width, tt.maxWidth)
			}
		})
	}
}

func TestFitText(t *testing.T) {
	tests := []struct {
		text     string
		maxWidth int
		ellipsis string
		expected string
	}{
		{"short", 10, "…", "short"},
		{"Hello, World!", 8, "…", "Hello, …"},
		{"Hello, World!", 8, "...", "Hello..."},
		{"abc", 2, "...", "ab"},
		{"世界世界", 5, "…", "世界…"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := FitText(tt.text, tt.maxWidth, tt.ellipsis); got != tt.expected {
				t.Errorf("FitText(%q, %d, %q) = %q, want %q",
					tt.text, tt.maxWidth, tt.ellipsis, got, tt.expected)
			}
		})
	}
}

func TestCanvas_PutString(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		x, y      int
		text      string
		wantWidth int
		expected  string
	}{
		{
			name: "Plain", width: 6, x: 1,
			text: "abc", wantWidth: 3,
			expected: " abc  ",
		},
		{
			name: "Clipped on the right", width: 4, x: 2,
			text: "abcdef", wantWidth: 6,
			expected: "  ab",
		},
		{
			name: "Clipped on the left", width: 4, x: -2,
			text: "abcdef", wantWidth: 6,
			expected: "cdef",
		},
		{
			name: "Wide glyph half visible", width: 4, x: -1,
			text: "世ab", wantWidth: 4,
			expected: " ab ",
		},
		{
			name: "Combining marks share a cell", width: 4,
			text: "e\u0301x", wantWidth: 2,
			expected: "ex  ",
		},
		{
			name: "Row outside the canvas", width: 4, y: 3,
			text: "ab", wantWidth: 2,
			expected: "    ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, tt.width, 1)
			n, err := c.PutString(tt.x, tt.y, tt.text)
			if err != nil {
				t.Fatalf("PutString error = %v", err)
			}
			if n != tt.wantWidth {
				t.Errorf("PutString returned %d, want %d", n, tt.wantWidth)
			}
			NewTestValidator(t).AssertCanvasEquals(c, tt.expected)
		})
	}
}

func TestCanvas_Printf(t *testing.T) {
	c := mustNew(t, 5, 1)
	if _, err := c.Printf(1, 0, "%03d", 7); err != nil {
		t.Fatalf("Printf error = %v", err)
	}
	NewTestValidator(t).AssertCanvasEquals(c, " 007 ")
}

func TestCanvas_Print(t *testing.T) {
	c := mustNew(t, 4, 2)
	c.SetCursor(1, 0)

	if err := c.Print("ab\ncd"); err != nil {
		t.Fatalf("Print error = %v", err)
	}
	NewTestValidator(t).AssertCanvasEquals(c, `
 ab 
cd  `)
	if got := c.Cursor(); got != (core.Point{X: 2, Y: 1}) {
		t.Errorf("Cursor() = %v, want (2,1)", got)
	}
}

func TestCanvas_PutParagraph(t *testing.T) {
	c := mustNew(t, 6, 4)
	n, err := c.PutParagraph(1, 0, 5, "one two three", WrapModeWord)
	if err != nil {
		t.Fatalf("PutParagraph error = %v", err)
	}
	if n != 3 {
		t.Errorf("PutParagraph returned %d lines, want 3", n)
	}
	NewTestValidator(t).AssertCanvasEquals(c, `
 one  
 two  
 three
      `)
}

func TestCanvas_TextOnReleased(t *testing.T) {
	c := mustNew(t, 4, 1)
	c.Release()

	if _, err := c.PutString(0, 0, "x"); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("PutString error = %v, want ErrInvalidHandle", err)
	}
	if err := c.Print("x"); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Print error = %v, want ErrInvalidHandle", err)
	}
	if _, err := c.PutParagraph(0, 0, 4, "x", WrapModeWord); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("PutParagraph error = %v, want ErrInvalidHandle", err)
	}
}
